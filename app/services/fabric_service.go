package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/karavella/fabric-catalog/app/models"
	"github.com/karavella/fabric-catalog/app/repositories"
	"gorm.io/gorm"
)

// ErrNoGeneratedID means the insert reported success but the driver
// returned no auto-increment id. That breaks the persistence contract and
// aborts the whole transaction.
var ErrNoGeneratedID = errors.New("fabric insert returned no generated id")

const genericFailureMessage = "Something went wrong. Please try again."

// FabricService owns the write and read flows for fabrics and their
// variants. Each write validates first, then applies every change inside
// one transaction; no partial state ever survives a failure.
type FabricService struct {
	tx          repositories.TxManager
	fabricRepo  repositories.FabricRepositoryImpl
	variantRepo repositories.VariantRepositoryImpl
	validator   *validator.Validate
}

func NewFabricService(
	tx repositories.TxManager,
	fabricRepo repositories.FabricRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	validator *validator.Validate,
) *FabricService {
	return &FabricService{
		tx:          tx,
		fabricRepo:  fabricRepo,
		variantRepo: variantRepo,
		validator:   validator,
	}
}

// CreateFabric validates the full submission and inserts the fabric with
// all its variants as one atomic unit.
func (s *FabricService) CreateFabric(ctx context.Context, sub *FabricSubmission) Result {
	if errs := ValidateSubmission(s.validator, sub, ProfileFull); len(errs) > 0 {
		return failFields("Please correct the highlighted fields.", errs)
	}

	fabric := sub.toModel()
	txErr := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.fabricRepo.CreateFabricTx(ctx, tx, fabric); err != nil {
			return err
		}
		if fabric.ID == 0 {
			return ErrNoGeneratedID
		}
		for i := range sub.Variants {
			variant := sub.Variants[i].toModel(fabric.ID)
			if err := s.variantRepo.InsertTx(ctx, tx, &variant); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return s.failure("CreateFabric", txErr)
	}

	return ok(fmt.Sprintf("Fabric %q (%s) created with %d variant(s).",
		fabric.Name, fabric.ExternalID, len(sub.Variants)))
}

// UpdateFabric applies a partial-or-full submission to an existing
// fabric. Core columns are only written when present in the submission.
// When a variants list is present it is the authoritative full set: the
// persisted variants are reconciled against it, and omission means
// deletion. Without a variants list, variants are untouched.
func (s *FabricService) UpdateFabric(ctx context.Context, fabricID uint, sub *FabricSubmission) Result {
	if errs := ValidateSubmission(s.validator, sub, ProfileCore); len(errs) > 0 {
		return failFields("Please correct the highlighted fields.", errs)
	}

	existing, err := s.fabricRepo.GetByID(ctx, fabricID)
	if err != nil {
		log.Printf("UpdateFabric: failed to load fabric %d: %v", fabricID, err)
		return fail(genericFailureMessage)
	}
	if existing == nil {
		return fail("Fabric not found.")
	}

	columns := sub.coreColumns()
	var plan VariantPlan
	if sub.Variants != nil {
		persistedIDs := make([]uint, 0, len(existing.Variants))
		for _, variant := range existing.Variants {
			persistedIDs = append(persistedIDs, variant.ID)
		}
		plan = ReconcileVariants(persistedIDs, sub.Variants)
		// Any variant change also counts as a mutation of the fabric.
		columns["updated_at"] = time.Now()
	}

	txErr := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.fabricRepo.UpdateColumnsTx(ctx, tx, fabricID, columns); err != nil {
			return err
		}
		if sub.Variants == nil {
			return nil
		}
		for i := range plan.ToUpdate {
			variant := plan.ToUpdate[i]
			if err := s.variantRepo.UpdateTx(ctx, tx, fabricID, *variant.ID, variant.columns()); err != nil {
				return err
			}
		}
		for i := range plan.ToInsert {
			row := plan.ToInsert[i].toModel(fabricID)
			if err := s.variantRepo.InsertTx(ctx, tx, &row); err != nil {
				return err
			}
		}
		return s.variantRepo.DeleteByIDsTx(ctx, tx, fabricID, plan.ToDeleteIDs)
	})
	if txErr != nil {
		return s.failure("UpdateFabric", txErr)
	}

	if sub.Variants != nil {
		return ok(fmt.Sprintf("Fabric %q updated: %d variant(s) added, %d updated, %d removed.",
			existing.Name, len(plan.ToInsert), len(plan.ToUpdate), len(plan.ToDeleteIDs)))
	}
	return ok(fmt.Sprintf("Fabric %q updated.", existing.Name))
}

// DeleteFabric removes a fabric; its variants cascade away with it.
func (s *FabricService) DeleteFabric(ctx context.Context, fabricID uint) Result {
	rows, err := s.fabricRepo.DeleteFabric(ctx, fabricID)
	if err != nil {
		log.Printf("DeleteFabric: failed to delete fabric %d: %v", fabricID, err)
		return fail(genericFailureMessage)
	}
	if rows == 0 {
		return fail("Fabric not found or already deleted.")
	}
	return ok("Fabric deleted.")
}

// ListFabrics returns the catalog newest-first with variants attached in
// code order.
func (s *FabricService) ListFabrics(ctx context.Context) ([]models.Fabric, error) {
	return s.fabricRepo.GetFabrics(ctx)
}

// GetFabricForEdit returns (nil, nil) for an unknown id; a missing fabric
// is a normal outcome, not an error.
func (s *FabricService) GetFabricForEdit(ctx context.Context, fabricID uint) (*models.Fabric, error) {
	return s.fabricRepo.GetByID(ctx, fabricID)
}

// failure converts a transaction error into a caller-facing Result.
// Uniqueness conflicts become specific, retryable messages; anything else
// is logged for operators and reported generically.
func (s *FabricService) failure(op string, err error) Result {
	if message, isConflict := translateDuplicate(err); isConflict {
		return fail(message)
	}
	if errors.Is(err, ErrNoGeneratedID) {
		log.Printf("%s: persistence contract violation: %v", op, err)
		return fail("Fabric insertion failed.")
	}
	log.Printf("%s: transaction failed: %v", op, err)
	return fail(genericFailureMessage)
}
