// Package schema plans the DDL and seed rows of enum lookup tables using
// the atlas migration planners.
package schema

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"
	"github.com/google/uuid"

	"github.com/syssam/plectrum/dialect"
	"github.com/syssam/plectrum/dialect/sql"
)

// Supported id types of a lookup table.
const (
	IDInt    = "int"
	IDInt32  = "int32"
	IDInt64  = "int64"
	IDString = "string"
	IDUUID   = "uuid"
)

// ValidIDType reports whether t is a supported id type.
func ValidIDType(t string) bool {
	switch t {
	case IDInt, IDInt32, IDInt64, IDString, IDUUID:
		return true
	default:
		return false
	}
}

// Lookup describes an {id, label} lookup table backing one enumeration.
type Lookup struct {
	// Name of the table.
	Name string
	// IDType is one of the ID* constants. Defaults to IDInt64.
	IDType string
	// Dialect is one of the dialect package constants.
	Dialect string
	// Labels to seed, in variant order.
	Labels []string
}

// Plan holds the statements that create and seed a lookup table.
type Plan struct {
	Create []string
	Seed   []string
}

// Statements returns the create statements followed by the seed statements.
func (p *Plan) Statements() []string {
	return append(append([]string(nil), p.Create...), p.Seed...)
}

// String returns the statements as a SQL script.
func (p *Plan) String() string {
	var b strings.Builder
	for _, s := range p.Statements() {
		b.WriteString(s)
		b.WriteString(";\n")
	}
	return b.String()
}

func (l *Lookup) idType() string {
	if l.IDType == "" {
		return IDInt64
	}
	return l.IDType
}

// Table returns the atlas definition of the lookup table: an id primary key
// and a unique, non-null label column.
func (l *Lookup) Table() (*schema.Table, error) {
	if !dialect.Valid(l.Dialect) {
		return nil, fmt.Errorf("schema: unsupported dialect %q", l.Dialect)
	}
	if _, err := sql.QuoteIdent(l.Dialect, l.Name); err != nil {
		return nil, fmt.Errorf("schema: table: %w", err)
	}
	id, err := l.idColumn()
	if err != nil {
		return nil, err
	}
	label := l.labelColumn()
	t := schema.NewTable(l.Name).
		AddColumns(id, label)
	t.SetPrimaryKey(schema.NewPrimaryKey(id))
	t.AddIndexes(schema.NewUniqueIndex(l.Name + "_" + sql.DefaultLabelColumn + "_key").AddColumns(label))
	return t, nil
}

func (l *Lookup) idColumn() (*schema.Column, error) {
	name := sql.DefaultIDColumn
	switch typ := l.idType(); {
	case typ == IDInt32 && l.Dialect == dialect.MySQL:
		return schema.NewIntColumn(name, "int"), nil
	case typ == IDInt32, l.Dialect == dialect.SQLite && (typ == IDInt || typ == IDInt64):
		return schema.NewIntColumn(name, "integer"), nil
	case typ == IDInt || typ == IDInt64:
		return schema.NewIntColumn(name, "bigint"), nil
	case typ == IDUUID && l.Dialect == dialect.Postgres:
		return schema.NewColumn(name).SetType(&schema.UUIDType{T: postgres.TypeUUID}), nil
	case typ == IDUUID && l.Dialect == dialect.MySQL:
		return schema.NewStringColumn(name, "char", schema.StringSize(36)), nil
	case typ == IDString && l.Dialect == dialect.MySQL:
		return schema.NewStringColumn(name, "varchar", schema.StringSize(255)), nil
	case typ == IDUUID, typ == IDString:
		return schema.NewStringColumn(name, "text"), nil
	default:
		return nil, fmt.Errorf("schema: unsupported id type %q", typ)
	}
}

func (l *Lookup) labelColumn() *schema.Column {
	if l.Dialect == dialect.MySQL {
		return schema.NewStringColumn(sql.DefaultLabelColumn, "varchar", schema.StringSize(255))
	}
	return schema.NewStringColumn(sql.DefaultLabelColumn, "text")
}

// Plan returns the CREATE statements computed by the atlas planner of the
// dialect, and one INSERT per label. Integer and string ids are numbered
// from 1 in label order; uuid ids are derived from the table and label so
// that the seed is stable across runs.
func (l *Lookup) Plan(ctx context.Context) (*Plan, error) {
	t, err := l.Table()
	if err != nil {
		return nil, err
	}
	pa, err := planner(l.Dialect)
	if err != nil {
		return nil, err
	}
	mp, err := pa.PlanChanges(ctx, "create_"+l.Name, []schema.Change{&schema.AddTable{T: t}})
	if err != nil {
		return nil, fmt.Errorf("schema: plan %s: %w", l.Name, err)
	}
	p := &Plan{}
	for _, c := range mp.Changes {
		p.Create = append(p.Create, c.Cmd)
	}
	seed, err := l.seed()
	if err != nil {
		return nil, err
	}
	p.Seed = seed
	return p, nil
}

func (l *Lookup) seed() ([]string, error) {
	table, err := sql.QuoteIdent(l.Dialect, l.Name)
	if err != nil {
		return nil, err
	}
	idc, _ := sql.QuoteIdent(l.Dialect, sql.DefaultIDColumn)
	labelc, _ := sql.QuoteIdent(l.Dialect, sql.DefaultLabelColumn)
	stmts := make([]string, 0, len(l.Labels))
	for i, label := range l.Labels {
		var id string
		switch l.idType() {
		case IDString:
			id = sql.QuoteString(l.Dialect, strconv.Itoa(i+1))
		case IDUUID:
			id = sql.QuoteString(l.Dialect, SeedUUID(l.Name, label).String())
		default:
			id = strconv.Itoa(i + 1)
		}
		stmts = append(stmts, fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (%s, %s)",
			table, idc, labelc, id, sql.QuoteString(l.Dialect, label)))
	}
	return stmts, nil
}

// SeedUUID returns the id seeded for label in table when the id type is uuid.
func SeedUUID(table, label string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(table+"/"+label))
}

func planner(name string) (migrate.PlanApplier, error) {
	switch name {
	case dialect.SQLite:
		return sqlite.DefaultPlan, nil
	case dialect.MySQL:
		return mysql.DefaultPlan, nil
	case dialect.Postgres:
		return postgres.DefaultPlan, nil
	default:
		return nil, fmt.Errorf("schema: unsupported dialect %q", name)
	}
}
