// Package plectrum binds closed enumerations to external string labels and
// reconciles them with lookup tables stored outside the program.
//
// An enumeration type implements Enum, usually through code generated by
// compiler/gen. A DataSource supplies the external {id: label} table, for
// example a SQL lookup table (dialect/sql) or a file (source/file). Load
// proves that the two sets of labels are identical before returning a
// Mapping:
//
//	m, err := plectrum.Load[int64, colors.Color](ctx, src)
//	switch {
//	case plectrum.IsDataSource(err):
//	    // the table could not be read
//	case plectrum.IsNotDefinedInCode(err), plectrum.IsMissingFromData(err):
//	    // the table and the code disagree
//	}
//	c, ok := m.ByID(4)          // colors.ColorDarkBlue, true
//	id, ok := m.GetID(c)        // 4, true
//	c, ok = m.ByValue("yellow") // colors.ColorYellow, true
//
// A Mapping is immutable and safe for concurrent readers.
package plectrum
