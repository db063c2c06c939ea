package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
	"github.com/studiofin/studiofin/internal/usecase/mocks"
)

func newReferenceFixture(t *testing.T) (*usecase.ReferenceUseCase, *mocks.MockCategoryRepository) {
	t.Helper()

	categories := mocks.NewMockCategoryRepositoryWithSystem()
	uc := usecase.NewReferenceUseCase(
		mocks.NewMockClientRepository(),
		categories,
		mocks.NewMockWorkTypeRepository(),
		mocks.NewMockIDGenerator(),
	)

	return uc, categories
}

func TestCreateClient(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	taxRate := dec("20")
	client, err := uc.CreateClient(context.Background(), domain.Client{
		Name:    "Acme Studio",
		TaxRate: &taxRate,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, client.ID)
	assert.False(t, client.CreatedAt.IsZero())
	require.NotNil(t, client.TaxRate)
	assert.True(t, client.TaxRate.Equal(dec("20")))
}

func TestCreateClient_Invalid(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	_, err := uc.CreateClient(context.Background(), domain.Client{Name: "   "})
	assert.Error(t, err)

	badRate := dec("101")
	_, err = uc.CreateClient(context.Background(), domain.Client{Name: "Acme", TaxRate: &badRate})
	assert.Error(t, err)
}

func TestUpdateClient_NotFound(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	err := uc.UpdateClient(context.Background(), domain.Client{ID: "missing", Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCreateCategory_Slug(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	tests := []struct {
		name string
		slug string
	}{
		{"Office Rent", "office_rent"},
		{"  Software & Tools  ", "software__tools"},
		{"Travel", "travel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := uc.CreateCategory(context.Background(), tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.slug, category.Slug)
			assert.False(t, category.System)
		})
	}
}

func TestDeleteCategory_SystemProtected(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	err := uc.DeleteCategory(context.Background(), "cat-tax")
	assert.ErrorIs(t, err, domain.ErrSystemCategory)

	err = uc.DeleteCategory(context.Background(), "cat-fund")
	assert.ErrorIs(t, err, domain.ErrSystemCategory)
}

func TestDeleteCategory(t *testing.T) {
	uc, categories := newReferenceFixture(t)

	category, err := uc.CreateCategory(context.Background(), "Office Rent")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(context.Background(), category.ID))

	_, err = categories.GetByID(context.Background(), category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateWorkType(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	price := dec("2500")
	workType, err := uc.CreateWorkType(context.Background(), domain.WorkType{
		Name:         "Logo design",
		DefaultPrice: &price,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, workType.ID)
	require.NotNil(t, workType.DefaultPrice)
	assert.True(t, workType.DefaultPrice.Equal(dec("2500")))

	listed, err := uc.ListWorkTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestUpdateWorkType_NotFound(t *testing.T) {
	uc, _ := newReferenceFixture(t)

	err := uc.UpdateWorkType(context.Background(), domain.WorkType{ID: "missing", Name: "Logo"})
	assert.ErrorIs(t, err, domain.ErrWorkTypeNotFound)
}
