package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func newStore() *repository.MemoryStore {
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	return repository.NewMemoryStore(seed.Default().Expand(now, 7, 30*time.Minute), timezone.FixedClock(now))
}

func TestCatalogUseCases(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	branches, err := NewListBranches(store).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, branches, 3)

	deps, err := NewListDepartments(store).Execute(ctx, " branch-a ")
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "cardiology-a", deps[0].ID)
	assert.Equal(t, "general-a", deps[1].ID)

	docs, err := NewListDoctors(store).Execute(ctx, "pediatrics-b")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc3", docs[0].ID)
	assert.Equal(t, "doc4", docs[1].ID)
}

func TestCatalogUseCases_UnknownParent(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	_, err := NewListDepartments(store).Execute(ctx, "branch-z")
	assert.True(t, httperr.IsBusiness(err, catalog.CodeBranchNotFound))

	_, err = NewListDoctors(store).Execute(ctx, "oncology")
	assert.True(t, httperr.IsBusiness(err, catalog.CodeDepartmentNotFound))
}
