package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tokentab/contexts/finance-core/lending-ledger-service/adapters/memory"
	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	"tokentab/contexts/finance-core/lending-ledger-service/ports"
)

var errAccessDenied = errors.New("access denied")

type ownerOnlyAccess struct{}

func (ownerOnlyAccess) RequireAccess(_ context.Context, actorUserID string, _ string, ownerUserID string) error {
	if actorUserID != ownerUserID {
		return errAccessDenied
	}
	return nil
}

type recordingAudit struct {
	actions []string
}

func (r *recordingAudit) Audit(_ context.Context, action string, _ string, _ map[string]any) error {
	r.actions = append(r.actions, action)
	return nil
}

type fixture struct {
	store  *memory.Store
	audit  *recordingAudit
	create CreateLendingRecordUseCase
	lend   LendTokensUseCase
	settle SettleTokensUseCase
	accept AcceptRecordUseCase
}

func newFixture() fixture {
	store := memory.NewStore()
	audit := &recordingAudit{}
	var access ports.AccessChecker = ownerOnlyAccess{}
	return fixture{
		store: store,
		audit: audit,
		create: CreateLendingRecordUseCase{
			Repository:  store,
			Access:      access,
			Clock:       store,
			IDGenerator: store,
			Audit:       audit,
		},
		lend: LendTokensUseCase{
			Repository: store,
			Access:     access,
			Clock:      store,
			Audit:      audit,
		},
		settle: SettleTokensUseCase{
			Repository: store,
			Access:     access,
			Clock:      store,
			Audit:      audit,
		},
		accept: AcceptRecordUseCase{
			Repository: store,
			Access:     access,
			Clock:      store,
			Audit:      audit,
		},
	}
}

func TestCreateRecordStartsPending(t *testing.T) {
	f := newFixture()

	record, err := f.create.Execute(context.Background(), CreateRecordCommand{
		ActorUserID:   "user-lender-1",
		Role:          "user",
		PersonName:    "  Alice  ",
		InitialTokens: 3,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if record.PersonName != "Alice" {
		t.Fatalf("expected trimmed person name, got %q", record.PersonName)
	}
	if record.AcceptanceStatus != entities.AcceptancePending {
		t.Fatalf("new records must be pending, got %q", record.AcceptanceStatus)
	}
	if record.TokenCount != 3 || record.TotalTokensLent != 3 {
		t.Fatalf("unexpected balances: %+v", record)
	}
	if record.Version != 1 {
		t.Fatalf("new records start at version 1, got %d", record.Version)
	}
	if len(f.audit.actions) != 1 || f.audit.actions[0] != "lending_record_created" {
		t.Fatalf("expected creation audit, got %v", f.audit.actions)
	}
}

func TestCreateRecordRejectsBlankName(t *testing.T) {
	f := newFixture()

	_, err := f.create.Execute(context.Background(), CreateRecordCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		PersonName:  "   ",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRecordInput) {
		t.Fatalf("expected ErrInvalidRecordInput, got %v", err)
	}
}

func TestLendIncreasesBalanceAndTotal(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 2)

	updated, err := f.lend.Execute(context.Background(), LendTokensCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    record.RecordID,
		TokenCount:  5,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if updated.TokenCount != 7 || updated.TotalTokensLent != 7 {
		t.Fatalf("unexpected balances after lend: %+v", updated)
	}
	if updated.Version != record.Version+1 {
		t.Fatalf("lend must bump the version, got %d", updated.Version)
	}
}

func TestSettleDecreasesBalanceOnly(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 7)

	updated, err := f.settle.Execute(context.Background(), SettleTokensCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    record.RecordID,
		TokenCount:  4,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if updated.TokenCount != 3 {
		t.Fatalf("expected balance 3, got %d", updated.TokenCount)
	}
	if updated.TotalTokensLent != 7 {
		t.Fatalf("settle must not touch the lifetime total, got %d", updated.TotalTokensLent)
	}
}

func TestSettleRejectsOverpayment(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 2)

	_, err := f.settle.Execute(context.Background(), SettleTokensCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    record.RecordID,
		TokenCount:  3,
	})
	if !errors.Is(err, domainerrors.ErrInvalidTokenAmount) {
		t.Fatalf("expected ErrInvalidTokenAmount, got %v", err)
	}

	stored, err := f.store.GetRecord(context.Background(), record.RecordID)
	if err != nil {
		t.Fatalf("GetRecord returned error: %v", err)
	}
	if stored.TokenCount != 2 {
		t.Fatalf("rejected settle must not change the balance, got %d", stored.TokenCount)
	}
}

func TestLendAndSettleRejectNonPositiveAmounts(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 2)

	for _, amount := range []int64{0, -1} {
		_, err := f.lend.Execute(context.Background(), LendTokensCommand{
			ActorUserID: "user-lender-1",
			Role:        "user",
			RecordID:    record.RecordID,
			TokenCount:  amount,
		})
		if !errors.Is(err, domainerrors.ErrInvalidTokenAmount) {
			t.Errorf("lend %d: expected ErrInvalidTokenAmount, got %v", amount, err)
		}

		_, err = f.settle.Execute(context.Background(), SettleTokensCommand{
			ActorUserID: "user-lender-1",
			Role:        "user",
			RecordID:    record.RecordID,
			TokenCount:  amount,
		})
		if !errors.Is(err, domainerrors.ErrInvalidTokenAmount) {
			t.Errorf("settle %d: expected ErrInvalidTokenAmount, got %v", amount, err)
		}
	}
}

func TestAcceptIsIdempotentlyRejected(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 1)

	accepted, err := f.accept.Execute(context.Background(), AcceptRecordCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    record.RecordID,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if accepted.AcceptanceStatus != entities.AcceptanceAccepted {
		t.Fatalf("expected accepted status, got %q", accepted.AcceptanceStatus)
	}

	_, err = f.accept.Execute(context.Background(), AcceptRecordCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    record.RecordID,
	})
	if !errors.Is(err, domainerrors.ErrRecordAlreadyAccepted) {
		t.Fatalf("expected ErrRecordAlreadyAccepted, got %v", err)
	}
}

func TestMutationsDenyForeignActors(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 2)

	_, err := f.lend.Execute(context.Background(), LendTokensCommand{
		ActorUserID: "user-lender-2",
		Role:        "user",
		RecordID:    record.RecordID,
		TokenCount:  1,
	})
	if !errors.Is(err, errAccessDenied) {
		t.Fatalf("expected access denial, got %v", err)
	}

	stored, _ := f.store.GetRecord(context.Background(), record.RecordID)
	if stored.TokenCount != 2 || stored.Version != record.Version {
		t.Fatalf("denied mutation must not change the record: %+v", stored)
	}
}

func TestUnknownRecordSurfacesNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.lend.Execute(context.Background(), LendTokensCommand{
		ActorUserID: "user-lender-1",
		Role:        "user",
		RecordID:    "record-missing",
		TokenCount:  1,
	})
	if !errors.Is(err, domainerrors.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestStaleUpdateLosesToConcurrentWriter(t *testing.T) {
	f := newFixture()
	record := mustCreate(t, f, 2)

	// Another writer bumps the version behind this command's back.
	stale := record
	stale.Version++
	stale.UpdatedAt = time.Now().UTC()
	if err := f.store.UpdateRecord(context.Background(), stale); err != nil {
		t.Fatalf("staging concurrent update failed: %v", err)
	}

	withdrawn := record
	withdrawn.Version += 1
	if err := f.store.UpdateRecord(context.Background(), withdrawn); !errors.Is(err, domainerrors.ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

func mustCreate(t *testing.T, f fixture, initialTokens int64) entities.LendingRecord {
	t.Helper()
	record, err := f.create.Execute(context.Background(), CreateRecordCommand{
		ActorUserID:   "user-lender-1",
		Role:          "user",
		PersonName:    "Alice",
		InitialTokens: initialTokens,
	})
	if err != nil {
		t.Fatalf("creating record failed: %v", err)
	}
	return record
}
