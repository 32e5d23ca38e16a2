package gen

import "github.com/dave/jennifer/jen"

// genSource generates the <name>_source.go file of t: a constructor of the
// SQL lookup-table source and a loader of the validated mapping.
func (g *JenniferGenerator) genSource(t *Type) *jen.File {
	f := g.newFile()
	id := idType(t)
	src := "New" + t.Name + "Source"

	f.Commentf("%s returns a data source reading the %s lookup table.", src, t.Table())
	f.Func().Id(src).Params(
		jen.Id("drv").Qual(dialectPkg, "Driver"),
		jen.Id("opts").Op("...").Qual(sqlPkg, "SourceOption"),
	).Op("*").Qual(sqlPkg, "Source").Types(id).Block(
		jen.Return(jen.Qual(sqlPkg, "NewSource").Types(id).Call(jen.Id("drv"), jen.Id(t.Name+"Table"), jen.Id("opts").Op("..."))),
	)

	f.Line()
	f.Commentf("Load%sMapping loads the %s lookup table and validates it against the %s labels.", t.Name, t.Table(), t.Name)
	f.Func().Id("Load"+t.Name+"Mapping").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("drv").Qual(dialectPkg, "Driver"),
		jen.Id("opts").Op("...").Qual(sqlPkg, "SourceOption"),
	).Params(
		jen.Op("*").Qual(plectrumPkg, "Mapping").Types(id, jen.Id(t.Name)),
		jen.Error(),
	).Block(
		jen.Return(jen.Qual(plectrumPkg, "Load").Types(id, jen.Id(t.Name)).Call(
			jen.Id("ctx"),
			jen.Id(src).Call(jen.Id("drv"), jen.Id("opts").Op("...")),
		)),
	)
	return f
}
