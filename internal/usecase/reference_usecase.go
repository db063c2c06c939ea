package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/studiofin/studiofin/internal/domain"
)

// ReferenceUseCase handles reference data: clients, expense
// categories, and work types. CRUD is deliberately thin; the
// settlement engine only reads this data.
type ReferenceUseCase struct {
	clientRepo   ClientRepository
	categoryRepo CategoryRepository
	workTypeRepo WorkTypeRepository
	idGen        IDGenerator
}

// NewReferenceUseCase creates a new ReferenceUseCase.
func NewReferenceUseCase(
	clientRepo ClientRepository,
	categoryRepo CategoryRepository,
	workTypeRepo WorkTypeRepository,
	idGen IDGenerator,
) *ReferenceUseCase {
	return &ReferenceUseCase{
		clientRepo:   clientRepo,
		categoryRepo: categoryRepo,
		workTypeRepo: workTypeRepo,
		idGen:        idGen,
	}
}

// CreateClient registers a new client.
func (uc *ReferenceUseCase) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if err := domain.ValidateName(client.Name); err != nil {
		return nil, err
	}

	if client.TaxRate != nil {
		if err := domain.ValidateRate(*client.TaxRate); err != nil {
			return nil, err
		}
	}

	client.ID = uc.idGen.Generate()
	client.CreatedAt = time.Now().UTC()

	if err := uc.clientRepo.Create(ctx, &client); err != nil {
		return nil, err
	}

	return &client, nil
}

// UpdateClient updates a client's name, tax override, or archive flag.
func (uc *ReferenceUseCase) UpdateClient(ctx context.Context, client domain.Client) error {
	if err := domain.ValidateName(client.Name); err != nil {
		return err
	}

	if client.TaxRate != nil {
		if err := domain.ValidateRate(*client.TaxRate); err != nil {
			return err
		}
	}

	return uc.clientRepo.Update(ctx, &client)
}

// ListClients lists all clients.
func (uc *ReferenceUseCase) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return uc.clientRepo.List(ctx)
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9_]`)

// CreateCategory registers a non-system expense category.
func (uc *ReferenceUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = slugCleanup.ReplaceAllString(slug, "")

	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		Name:      name,
		Slug:      slug,
		System:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category; system categories are protected.
func (uc *ReferenceUseCase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if category.System {
		return domain.ErrSystemCategory
	}

	return uc.categoryRepo.Delete(ctx, id)
}

// ListCategories lists all expense categories.
func (uc *ReferenceUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// CreateWorkType registers a reusable kind of billable work.
func (uc *ReferenceUseCase) CreateWorkType(ctx context.Context, workType domain.WorkType) (*domain.WorkType, error) {
	if err := domain.ValidateName(workType.Name); err != nil {
		return nil, err
	}

	workType.ID = uc.idGen.Generate()
	workType.CreatedAt = time.Now().UTC()

	if err := uc.workTypeRepo.Create(ctx, &workType); err != nil {
		return nil, err
	}

	return &workType, nil
}

// UpdateWorkType updates a work type.
func (uc *ReferenceUseCase) UpdateWorkType(ctx context.Context, workType domain.WorkType) error {
	if err := domain.ValidateName(workType.Name); err != nil {
		return err
	}

	return uc.workTypeRepo.Update(ctx, &workType)
}

// ListWorkTypes lists all work types.
func (uc *ReferenceUseCase) ListWorkTypes(ctx context.Context) ([]*domain.WorkType, error) {
	return uc.workTypeRepo.List(ctx)
}
