package crossfile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/proplint/pkg/lint"
)

type funcCheck func(ctx context.Context, p *Project) error

func (f funcCheck) SaveIssues(ctx context.Context, p *Project) error { return f(ctx, p) }

func registerTest(t *testing.T, key string, factory Factory) {
	t.Helper()
	Register(Def{Key: key, New: factory})
	t.Cleanup(func() { unregister(key) })
}

// recordingSaver is a plain IssueSaver, not a Collector.
type recordingSaver struct {
	files []string
}

func (s *recordingSaver) SaveIssue(file *lint.InputFile, _ lint.Issue) {
	s.files = append(s.files, file.Path)
}

func TestRun_IsAllOrNothing(t *testing.T) {
	file := lint.NewInputFile("a.properties", nil)
	registerTest(t, "test-saves", func(saver IssueSaver) (Check, error) {
		return funcCheck(func(context.Context, *Project) error {
			saver.SaveIssue(file, lint.NewFileIssue("saved"))
			return nil
		}), nil
	})
	registerTest(t, "test-fails", func(IssueSaver) (Check, error) {
		return funcCheck(func(context.Context, *Project) error {
			return errors.New("cannot compare")
		}), nil
	})

	saver := &recordingSaver{}
	err := Run(context.Background(), NewProject(), saver, "test-saves", "test-fails")
	assert.EqualError(t, err, "cannot save issues on check test-fails: cannot compare")
	assert.Empty(t, saver.files)

	require.NoError(t, Run(context.Background(), NewProject(), saver, "test-saves"))
	assert.Equal(t, []string{"a.properties"}, saver.files)
}

func TestRun_ConstructionFailures(t *testing.T) {
	errBad := errors.New("bad configuration")
	registerTest(t, "test-bad-factory", func(IssueSaver) (Check, error) {
		return nil, errBad
	})
	registerTest(t, "test-panics", func(IssueSaver) (Check, error) {
		return funcCheck(func(context.Context, *Project) error {
			panic("index out of range")
		}), nil
	})
	registerTest(t, "test-no-factory", nil)

	tests := []struct {
		check   string
		wantErr string
	}{
		{check: "test-bad-factory", wantErr: "cannot save issues on check test-bad-factory: bad configuration"},
		{check: "test-panics", wantErr: "cannot save issues on check test-panics: panic: index out of range"},
		{check: "test-no-factory", wantErr: "cannot save issues on check test-no-factory: no factory registered"},
	}

	for _, tt := range tests {
		t.Run(tt.check, func(t *testing.T) {
			collector := &Collector{}
			err := Run(context.Background(), NewProject(), collector, tt.check)

			var cerr *ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.check, cerr.Check)
			assert.EqualError(t, err, tt.wantErr)
			assert.Zero(t, collector.Len())
		})
	}
}
