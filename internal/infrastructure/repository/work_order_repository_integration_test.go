package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"upkeep/internal/domain/workorder"
	vo "upkeep/internal/domain/workorder/value_objects"
	"upkeep/internal/infrastructure/persistence/models"
	"upkeep/internal/shared/db"
	"upkeep/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&models.CompanyModel{},
		&models.WorkOrderModel{},
		&models.WorkOrderSequenceModel{},
		&models.SubscriptionHistoryModel{},
		&models.ContactMessageModel{},
	)
	require.NoError(t, err)

	return gormDB
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func createTestWorkOrder(t *testing.T, companyID uint, title string) *workorder.WorkOrder {
	wo, err := workorder.NewWorkOrder(companyID, title, "integration test", vo.PriorityMedium, nil)
	require.NoError(t, err)
	return wo
}

// allocateAndSave mirrors what the create usecase does inside one
// transaction: take the next number, stamp it on the aggregate, insert.
func allocateAndSave(t *testing.T, gormDB *gorm.DB, woRepo *WorkOrderRepository, seqRepo *WorkOrderSequenceRepository, companyID uint, title string) *workorder.WorkOrder {
	t.Helper()
	txMgr := db.NewTransactionManager(gormDB)
	wo := createTestWorkOrder(t, companyID, title)

	err := txMgr.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		number, err := seqRepo.NextNumber(txCtx, companyID)
		if err != nil {
			return err
		}
		if err := wo.SetNumber(number); err != nil {
			return err
		}
		return woRepo.Save(txCtx, wo)
	})
	require.NoError(t, err)
	return wo
}

func TestWorkOrderSequence_FirstAllocation(t *testing.T) {
	gormDB := setupTestDB(t)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, testLogger())

	number, err := seqRepo.NextNumber(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "WO-0001", number)
}

func TestWorkOrderSequence_Monotonic(t *testing.T) {
	gormDB := setupTestDB(t)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, testLogger())
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		number, err := seqRepo.NextNumber(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("WO-%04d", i), number)
	}
}

func TestWorkOrderSequence_IndependentPerCompany(t *testing.T) {
	gormDB := setupTestDB(t)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, testLogger())
	ctx := context.Background()

	first, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	second, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	other, err := seqRepo.NextNumber(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, "WO-0001", first)
	assert.Equal(t, "WO-0002", second)
	assert.Equal(t, "WO-0001", other)
}

func TestWorkOrderSequence_DeletedNumbersNotReused(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	woRepo := NewWorkOrderRepository(gormDB, log)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	first := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "pump inspection")
	second := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "belt replacement")
	assert.Equal(t, "WO-0001", first.Number())
	assert.Equal(t, "WO-0002", second.Number())

	require.NoError(t, woRepo.Delete(ctx, second.ID()))

	third := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "motor alignment")
	assert.Equal(t, "WO-0003", third.Number())

	// The deleted row is gone from listings but keeps its number reserved.
	listed, total, err := woRepo.List(ctx, workorder.Filter{CompanyID: 1, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, wo := range listed {
		assert.NotEqual(t, "WO-0002", wo.Number())
	}
}

func TestWorkOrderSequence_SeedsFromExistingRows(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	// Rows created before the counter table existed.
	legacy := &models.WorkOrderModel{
		Number:    "WO-0042",
		CompanyID: 1,
		Title:     "legacy row",
		Status:    "open",
		Priority:  "medium",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, gormDB.Create(legacy).Error)

	number, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "WO-0043", number)
}

func TestWorkOrderSequence_SeedsFromSoftDeletedRows(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	deleted := &models.WorkOrderModel{
		Number:    "WO-0007",
		CompanyID: 1,
		Title:     "removed before the counter existed",
		Status:    "open",
		Priority:  "medium",
		CreatedAt: time.Now().Add(-time.Hour),
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	require.NoError(t, gormDB.Create(deleted).Error)

	number, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "WO-0008", number)
}

func TestWorkOrderSequence_MalformedLegacyNumberRestartsFromOne(t *testing.T) {
	gormDB := setupTestDB(t)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, testLogger())
	ctx := context.Background()

	legacy := &models.WorkOrderModel{
		Number:    "MAINT-7",
		CompanyID: 1,
		Title:     "imported from the old system",
		Status:    "open",
		Priority:  "low",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, gormDB.Create(legacy).Error)

	number, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "WO-0001", number)
}

func TestWorkOrderSequence_RollbackReleasesNumber(t *testing.T) {
	gormDB := setupTestDB(t)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, testLogger())
	txMgr := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := seqRepo.NextNumber(txCtx, 1); err != nil {
			return err
		}
		return fmt.Errorf("forced rollback")
	})
	require.Error(t, err)

	// The failed transaction never committed its increment, so the next
	// allocation starts over at 1.
	number, err := seqRepo.NextNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "WO-0001", number)
}

func TestWorkOrderRepository_DuplicateNumberRejected(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	woRepo := NewWorkOrderRepository(gormDB, log)
	ctx := context.Background()

	first := createTestWorkOrder(t, 1, "first")
	require.NoError(t, first.SetNumber("WO-0001"))
	require.NoError(t, woRepo.Save(ctx, first))

	dup := createTestWorkOrder(t, 1, "duplicate")
	require.NoError(t, dup.SetNumber("WO-0001"))
	err := woRepo.Save(ctx, dup)
	require.Error(t, err)

	// Same number under a different company is fine.
	other := createTestWorkOrder(t, 2, "other tenant")
	require.NoError(t, other.SetNumber("WO-0001"))
	assert.NoError(t, woRepo.Save(ctx, other))
}

func TestWorkOrderRepository_GetLatestIncludesDeleted(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	woRepo := NewWorkOrderRepository(gormDB, log)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "first")
	second := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "second")
	require.NoError(t, woRepo.Delete(ctx, second.ID()))

	latest, err := woRepo.GetLatestByCompanyID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "WO-0002", latest.Number())
}

func TestWorkOrderRepository_ListFilters(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	woRepo := NewWorkOrderRepository(gormDB, log)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "open one")
	inProgress := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "working on it")
	require.NoError(t, inProgress.ChangeStatus(vo.StatusInProgress, time.Now()))
	require.NoError(t, woRepo.Update(ctx, inProgress))
	allocateAndSave(t, gormDB, woRepo, seqRepo, 2, "other tenant")

	status := vo.StatusInProgress
	listed, total, err := woRepo.List(ctx, workorder.Filter{CompanyID: 1, Status: &status, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, inProgress.Number(), listed[0].Number())

	listed, total, err = woRepo.List(ctx, workorder.Filter{CompanyID: 1, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, listed, 2)
}

func TestWorkOrderRepository_UpdatePersistsStatusDates(t *testing.T) {
	gormDB := setupTestDB(t)
	log := testLogger()
	woRepo := NewWorkOrderRepository(gormDB, log)
	seqRepo := NewWorkOrderSequenceRepository(gormDB, log)
	ctx := context.Background()

	wo := allocateAndSave(t, gormDB, woRepo, seqRepo, 1, "full lifecycle")
	now := time.Now()
	require.NoError(t, wo.ChangeStatus(vo.StatusInProgress, now))
	require.NoError(t, woRepo.Update(ctx, wo))
	require.NoError(t, wo.ChangeStatus(vo.StatusCompleted, now.Add(time.Hour)))
	require.NoError(t, woRepo.Update(ctx, wo))

	found, err := woRepo.GetByID(ctx, wo.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, vo.StatusCompleted, found.Status())
	assert.NotNil(t, found.StartDate())
	assert.NotNil(t, found.CompletionDate())
}
