package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const peopleTableName = "people"

var personColumns = []any{"id", "name", "cpf", "birth_date", "created_at"}

// PeopleTable provides access to the people table.
type PeopleTable struct {
	exec bob.Executor
}

var _ IPersonTable = (*PeopleTable)(nil)

func NewPeopleTable(exec bob.Executor) *PeopleTable {
	return &PeopleTable{exec: exec}
}

func (t *PeopleTable) FindByID(ctx context.Context, id int64) (*Person, error) {
	return t.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

func (t *PeopleTable) FindByCPF(ctx context.Context, cpf string) (*Person, error) {
	return t.findOne(ctx, psql.Quote("cpf").EQ(psql.Arg(cpf)))
}

func (t *PeopleTable) findOne(ctx context.Context, where bob.Expression) (*Person, error) {
	query := psql.Select(
		sm.Columns(personColumns...),
		sm.From(peopleTableName),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Person]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert registers a person and returns the generated ID.
func (t *PeopleTable) Insert(ctx context.Context, create *PersonCreate) (int64, error) {
	query := psql.Insert(
		im.Into(peopleTableName, "name", "cpf", "birth_date"),
		im.Values(psql.Arg(create.Name), psql.Arg(create.CPF), psql.Arg(create.BirthDate)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
	if isUniqueViolation(err) {
		return 0, ErrDuplicate
	}
	return id, err
}
