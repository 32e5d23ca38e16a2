package plectrum_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/plectrum"
)

type State int

const (
	StateStopped State = iota + 1
	StateRunning
	StateStopping
)

func (s State) Value() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return ""
	}
}

func (s State) FromValue(label string) State {
	v, ok := s.Lookup(label)
	if !ok {
		panic(plectrum.NewUnknownLabelError("State", label))
	}
	return v
}

func (State) Lookup(label string) (State, bool) {
	switch label {
	case "stopped":
		return StateStopped, true
	case "running":
		return StateRunning, true
	case "stopping":
		return StateStopping, true
	default:
		return 0, false
	}
}

func (State) Values() []string {
	return []string{"stopped", "running", "stopping"}
}

var _ plectrum.Enum[State] = State(0)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match", func(t *testing.T) {
		m, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{
			1: "stopped",
			2: "running",
			3: "stopping",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, m.Len())

		v, ok := m.ByID(1)
		require.True(t, ok)
		assert.Equal(t, StateStopped, v)

		v, ok = m.ByValue("running")
		require.True(t, ok)
		assert.Equal(t, StateRunning, v)

		id, ok := m.GetID(StateStopping)
		require.True(t, ok)
		assert.Equal(t, 3, id)
	})

	t.Run("missing from data", func(t *testing.T) {
		m, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{
			1: "stopped",
			2: "running",
		})
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, plectrum.IsMissingFromData(err))
		assert.False(t, plectrum.IsNotDefinedInCode(err))
		assert.False(t, plectrum.IsDataSource(err))

		var merr *plectrum.MissingFromDataError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, []string{"stopping"}, merr.Labels)
		assert.Equal(t, "State", merr.Enum)
	})

	t.Run("not defined in code", func(t *testing.T) {
		_, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{
			1: "stopped",
			2: "running",
			3: "stopping",
			4: "waiting",
			5: "crashed",
		})
		require.Error(t, err)
		assert.True(t, plectrum.IsNotDefinedInCode(err))
		assert.False(t, plectrum.IsMissingFromData(err))

		var nerr *plectrum.NotDefinedInCodeError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, []string{"crashed", "waiting"}, nerr.Labels)
	})

	t.Run("unknown labels are reported before missing ones", func(t *testing.T) {
		_, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{
			1: "stopped",
			4: "waiting",
		})
		require.Error(t, err)
		assert.True(t, plectrum.IsNotDefinedInCode(err))
		assert.False(t, plectrum.IsMissingFromData(err))
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{})
		require.Error(t, err)
		var merr *plectrum.MissingFromDataError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, []string{"running", "stopped", "stopping"}, merr.Labels)
	})

	t.Run("data source failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		calls := 0
		src := plectrum.DataSourceFunc[int](func(context.Context) (map[int]string, error) {
			calls++
			return nil, cause
		})
		_, err := plectrum.Load[int, State](ctx, src)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, plectrum.IsDataSource(err))
		assert.ErrorIs(t, err, cause)
		assert.False(t, plectrum.IsMissingFromData(err))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("data source error is not wrapped twice", func(t *testing.T) {
		serr := plectrum.NewDataSourceError(errors.New("boom"))
		src := plectrum.DataSourceFunc[int](func(context.Context) (map[int]string, error) {
			return nil, serr
		})
		_, err := plectrum.Load[int, State](ctx, src)
		assert.Same(t, serr, err)
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := plectrum.Load[int, State](cctx, plectrum.Static[int]{1: "stopped", 2: "running", 3: "stopping"})
		require.Error(t, err)
		assert.True(t, plectrum.IsDataSource(err))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("duplicate labels", func(t *testing.T) {
		m, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{
			1: "stopped",
			2: "running",
			3: "stopping",
			7: "running",
		})
		require.NoError(t, err)
		v, ok := m.ByID(7)
		require.True(t, ok)
		assert.Equal(t, StateRunning, v)
		id, ok := m.GetID(StateRunning)
		require.True(t, ok)
		assert.Contains(t, []int{2, 7}, id)
	})

	t.Run("source table is copied", func(t *testing.T) {
		table := map[int]string{1: "stopped", 2: "running", 3: "stopping"}
		src := plectrum.DataSourceFunc[int](func(context.Context) (map[int]string, error) {
			return table, nil
		})
		m, err := plectrum.Load[int, State](ctx, src)
		require.NoError(t, err)
		table[1] = "waiting"
		v, ok := m.ByID(1)
		require.True(t, ok)
		assert.Equal(t, StateStopped, v)
	})

	t.Run("must load", func(t *testing.T) {
		assert.Panics(t, func() {
			plectrum.MustLoad[int, State](ctx, plectrum.Static[int]{})
		})
		assert.NotPanics(t, func() {
			plectrum.MustLoad[int, State](ctx, plectrum.Static[int]{1: "stopped", 2: "running", 3: "stopping"})
		})
	})
}

func TestMappingLookups(t *testing.T) {
	table := plectrum.Static[int64]{10: "stopped", 20: "running", 30: "stopping"}
	m := plectrum.MustLoad[int64, State](context.Background(), table)

	t.Run("round trip", func(t *testing.T) {
		for id, label := range table {
			v, ok := m.ByID(id)
			require.True(t, ok)
			assert.Equal(t, label, v.Value())
			got, ok := m.GetID(v)
			require.True(t, ok)
			assert.Equal(t, id, got)
		}
	})

	t.Run("misses", func(t *testing.T) {
		_, ok := m.ByID(99)
		assert.False(t, ok)
		_, ok = m.ByValue("waiting")
		assert.False(t, ok)
		_, ok = m.GetID(State(0))
		assert.False(t, ok)
	})

	t.Run("rows and ids", func(t *testing.T) {
		assert.Equal(t, map[int64]string(table), m.Rows())
		assert.ElementsMatch(t, []int64{10, 20, 30}, m.IDs())
		rows := m.Rows()
		rows[10] = "changed"
		v, _ := m.ByID(10)
		assert.Equal(t, StateStopped, v)
	})

	t.Run("all", func(t *testing.T) {
		seen := make(map[int64]State)
		for id, v := range m.All() {
			seen[id] = v
		}
		assert.Equal(t, map[int64]State{10: StateStopped, 20: StateRunning, 30: StateStopping}, seen)

		n := 0
		for range m.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("concurrent readers", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					v, ok := m.ByID(20)
					assert.True(t, ok)
					assert.Equal(t, StateRunning, v)
					_, ok = m.GetID(StateStopping)
					assert.True(t, ok)
				}
			}()
		}
		wg.Wait()
	})
}

func TestMappingUUID(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	m, err := plectrum.Load[uuid.UUID, State](context.Background(), plectrum.Static[uuid.UUID]{
		ids[0]: "stopped",
		ids[1]: "running",
		ids[2]: "stopping",
	})
	require.NoError(t, err)
	id, ok := m.GetID(StateRunning)
	require.True(t, ok)
	assert.Equal(t, ids[1], id)
	v, ok := m.ByID(ids[2])
	require.True(t, ok)
	assert.Equal(t, StateStopping, v)
}

func TestReconcile(t *testing.T) {
	code := []string{"a", "b"}
	tests := []struct {
		name    string
		data    map[string]string
		wantErr error
	}{
		{"equal", map[string]string{"1": "a", "2": "b"}, nil},
		{"superset", map[string]string{"1": "a", "2": "b", "3": "c"}, plectrum.ErrNotDefinedInCode},
		{"subset", map[string]string{"1": "a"}, plectrum.ErrMissingFromData},
		{"disjoint", map[string]string{"1": "c"}, plectrum.ErrNotDefinedInCode},
		{"duplicates", map[string]string{"1": "a", "2": "b", "3": "a"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plectrum.Reconcile("T", code, tt.data)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromValuePanics(t *testing.T) {
	assert.Equal(t, StateRunning, State(0).FromValue("running"))
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, plectrum.IsUnknownLabel(err))
	}()
	State(0).FromValue("waiting")
}
