package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
)

// genEnum generates the <name>_enum.go file of t. When gql is set, the
// MarshalGQL and UnmarshalGQL methods are generated as well.
func (g *JenniferGenerator) genEnum(t *Type, gql bool) *jen.File {
	f := g.newFile()
	r := t.Receiver()
	first, last := t.Variants[0], t.Variants[len(t.Variants)-1]

	if t.Comment != "" {
		doc(f, t.Comment)
	} else {
		f.Commentf("%s is a closed enumeration bound to the labels %s.", t.Name, quoteList(t.Values()))
	}
	f.Type().Id(t.Name).Int()

	f.Line()
	f.Const().DefsFunc(func(grp *jen.Group) {
		for _, v := range t.Variants {
			if v.Comment != "" {
				doc(grp, v.Comment)
			}
			if v == first {
				grp.Id(v.Const).Id(t.Name).Op("=").Iota().Op("+").Lit(1)
			} else {
				grp.Id(v.Const)
			}
		}
	})

	f.Line()
	f.Commentf("%sTable is the name of the lookup table holding the %s labels.", t.Name, t.Name)
	f.Const().Id(t.Name + "Table").Op("=").Lit(t.Table())

	f.Line()
	f.Commentf("Value returns the label bound to %s.", r)
	f.Func().Params(jen.Id(r).Id(t.Name)).Id("Value").Params().String().Block(
		jen.Switch(jen.Id(r)).BlockFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Case(jen.Id(v.Const)).Block(jen.Return(jen.Lit(v.Label)))
			}
			grp.Default().Block(jen.Return(jen.Lit("")))
		}),
	)

	f.Line()
	f.Comment("String implements the fmt.Stringer interface.")
	f.Func().Params(jen.Id(r).Id(t.Name)).Id("String").Params().String().Block(
		jen.If(jen.Id(r).Dot("IsValid").Call()).Block(
			jen.Return(jen.Id(r).Dot("Value").Call()),
		),
		jen.Return(jen.Lit(t.Name+"(").Op("+").Qual("strconv", "Itoa").Call(jen.Int().Call(jen.Id(r))).Op("+").Lit(")")),
	)

	f.Line()
	f.Commentf("IsValid reports whether %s is one of the declared variants.", r)
	f.Func().Params(jen.Id(r).Id(t.Name)).Id("IsValid").Params().Bool().Block(
		jen.Return(jen.Id(r).Op(">=").Id(first.Const).Op("&&").Id(r).Op("<=").Id(last.Const)),
	)

	f.Line()
	f.Comment("FromValue returns the variant bound to label. It panics if no variant is bound to label.")
	f.Func().Params(jen.Id(t.Name)).Id("FromValue").Params(jen.Id("label").String()).Id(t.Name).Block(
		jen.Return(jen.Id(t.Name + "FromValue").Call(jen.Id("label"))),
	)

	f.Line()
	f.Comment("Lookup returns the variant bound to label.")
	f.Func().Params(jen.Id(t.Name)).Id("Lookup").Params(jen.Id("label").String()).Params(jen.Id(t.Name), jen.Bool()).Block(
		jen.Switch(jen.Id("label")).BlockFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Case(jen.Lit(v.Label)).Block(jen.Return(jen.Id(v.Const), jen.True()))
			}
			grp.Default().Block(jen.Return(jen.Lit(0), jen.False()))
		}),
	)

	f.Line()
	f.Comment("Values returns the labels of all variants in declaration order.")
	f.Func().Params(jen.Id(t.Name)).Id("Values").Params().Index().String().Block(
		jen.Return(jen.Id(t.Name + "Values").Call()),
	)

	f.Line()
	f.Commentf("%sValues returns the labels of all %s variants in declaration order.", t.Name, t.Name)
	f.Func().Id(t.Name + "Values").Params().Index().String().Block(
		jen.Return(jen.Index().String().ValuesFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Lit(v.Label)
			}
		})),
	)

	f.Line()
	f.Commentf("%sVariants returns all %s variants in declaration order.", t.Name, t.Name)
	f.Func().Id(t.Name + "Variants").Params().Index().Id(t.Name).Block(
		jen.Return(jen.Index().Id(t.Name).ValuesFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Id(v.Const)
			}
		})),
	)

	f.Line()
	f.Commentf("%sFromValue returns the %s bound to label.", t.Name, t.Name)
	f.Comment("It panics with a *plectrum.UnknownLabelError if no variant is bound to label.")
	f.Func().Id(t.Name+"FromValue").Params(jen.Id("label").String()).Id(t.Name).Block(
		jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(t.Name).Call(jen.Lit(0)).Dot("Lookup").Call(jen.Id("label")),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Panic(jen.Qual(plectrumPkg, "NewUnknownLabelError").Call(jen.Lit(t.Name), jen.Id("label"))),
		),
		jen.Return(jen.Id("v")),
	)

	f.Line()
	f.Commentf("Parse%s is the fallible form of %sFromValue.", t.Name, t.Name)
	f.Func().Id("Parse"+t.Name).Params(jen.Id("label").String()).Params(jen.Id(t.Name), jen.Error()).Block(
		jen.If(
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id(t.Name).Call(jen.Lit(0)).Dot("Lookup").Call(jen.Id("label")),
			jen.Id("ok"),
		).Block(jen.Return(jen.Id("v"), jen.Nil())),
		jen.Return(jen.Lit(0), jen.Qual(plectrumPkg, "NewUnknownLabelError").Call(jen.Lit(t.Name), jen.Id("label"))),
	)

	f.Line()
	f.Comment("MarshalText implements the encoding.TextMarshaler interface.")
	f.Func().Params(jen.Id(r).Id(t.Name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.If(jen.Op("!").Id(r).Dot("IsValid").Call()).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit(fmt.Sprintf("invalid %s %%d", t.Name)), jen.Int().Call(jen.Id(r)))),
		),
		jen.Return(jen.Index().Byte().Call(jen.Id(r).Dot("Value").Call()), jen.Nil()),
	)

	f.Line()
	f.Comment("UnmarshalText implements the encoding.TextUnmarshaler interface.")
	f.Func().Params(jen.Id(r).Op("*").Id(t.Name)).Id("UnmarshalText").Params(jen.Id("text").Index().Byte()).Error().Block(
		jen.List(jen.Id("v"), jen.Err()).Op(":=").Id("Parse"+t.Name).Call(jen.String().Call(jen.Id("text"))),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Op("*").Id(r).Op("=").Id("v"),
		jen.Return(jen.Nil()),
	)

	if gql {
		genGQLMethods(f, t, r)
	}

	f.Line()
	if !gql {
		f.Var().Id("_").Qual(plectrumPkg, "Enum").Types(jen.Id(t.Name)).Op("=").Id(t.Name).Call(jen.Lit(0))
		return f
	}
	f.Var().Defs(
		jen.Id("_").Qual(plectrumPkg, "Enum").Types(jen.Id(t.Name)).Op("=").Id(t.Name).Call(jen.Lit(0)),
		jen.Id("_").Qual(graphqlPkg, "Marshaler").Op("=").Id(t.Name).Call(jen.Lit(0)),
		jen.Id("_").Qual(graphqlPkg, "Unmarshaler").Op("=").Parens(jen.Op("*").Id(t.Name)).Call(jen.Nil()),
	)
	return f
}

// genGQLMethods generates the gqlgen marshalers of t. Values cross the
// GraphQL boundary by their enum value names.
func genGQLMethods(f *jen.File, t *Type, r string) {
	f.Line()
	f.Comment("MarshalGQL implements the graphql.Marshaler interface.")
	f.Func().Params(jen.Id(r).Id(t.Name)).Id("MarshalGQL").Params(jen.Id("w").Qual("io", "Writer")).BlockFunc(func(grp *jen.Group) {
		grp.Var().Id("name").String()
		grp.Switch(jen.Id(r)).BlockFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Case(jen.Id(v.Const)).Block(jen.Id("name").Op("=").Lit(v.GraphQL))
			}
		})
		grp.Qual("io", "WriteString").Call(jen.Id("w"), jen.Qual("strconv", "Quote").Call(jen.Id("name")))
	})

	f.Line()
	f.Comment("UnmarshalGQL implements the graphql.Unmarshaler interface.")
	f.Func().Params(jen.Id(r).Op("*").Id(t.Name)).Id("UnmarshalGQL").Params(jen.Id("v").Any()).Error().Block(
		jen.List(jen.Id("name"), jen.Id("ok")).Op(":=").Id("v").Assert(jen.String()),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit(fmt.Sprintf("%s must be a string, got %%T", t.Name)), jen.Id("v"))),
		),
		jen.Switch(jen.Id("name")).BlockFunc(func(grp *jen.Group) {
			for _, v := range t.Variants {
				grp.Case(jen.Lit(v.GraphQL)).Block(jen.Op("*").Id(r).Op("=").Id(v.Const))
			}
			grp.Default().Block(
				jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit(fmt.Sprintf("%%q is not a valid %s", t.Name)), jen.Id("name"))),
			)
		}),
		jen.Return(jen.Nil()),
	)
}

// quoteList renders labels as a comma separated list of quoted strings.
func quoteList(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = strconv.Quote(l)
	}
	return strings.Join(quoted, ", ")
}
