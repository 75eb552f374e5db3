package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pcbuild_configurator/internal/adapter/persistence/repository"
	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/usecase/interfaces"
	mock_interfaces "pcbuild_configurator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type recordingScheduler struct {
	mu     sync.Mutex
	events []RecheckRequested
}

func (s *recordingScheduler) Schedule(ev RecheckRequested) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

var fixedNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func draftRepo(t *testing.T) *repository.SessionMemoryRepository {
	t.Helper()
	repo := repository.NewSessionMemoryRepository()
	if _, err := repo.Create(context.Background(), entities.BuildSession{
		ID:        "s-1",
		Step:      entities.StepPlatform,
		Lifecycle: entities.LifecycleDraft,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
		ExpiresAt: fixedNow.Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func newStore(repo interfaces.ISessionRepository, gw interfaces.IConfigurationGateway, sched CompatibilityScheduler) *ConfigurationStore {
	return NewConfigurationStore(ConfigurationStoreDeps{
		Sessions:   repo,
		Remote:     gw,
		Checker:    sched,
		SessionTTL: 2 * time.Hour,
		Now:        func() time.Time { return fixedNow },
	})
}

func remoteConfig(id string, put ...func(*entities.Components)) entities.Configuration {
	cfg := entities.Configuration{ID: id, Platform: entities.PlatformIntel, ConfigName: "Custom Build", UseCase: "General"}
	for _, fn := range put {
		fn(&cfg.Components)
	}
	// the remote pricing block is never trusted
	cfg.Pricing = entities.Pricing{Total: 999999}
	return cfg
}

func with(cat entities.Category, s entities.Selection) func(*entities.Components) {
	return func(c *entities.Components) { _ = c.Put(cat, s) }
}

func activeStore(t *testing.T, ctrl *gomock.Controller) (*ConfigurationStore, *mock_interfaces.MockIConfigurationGateway, *repository.SessionMemoryRepository, *recordingScheduler) {
	t.Helper()
	repo := draftRepo(t)
	gw := mock_interfaces.NewMockIConfigurationGateway(ctrl)
	sched := &recordingScheduler{}
	store := newStore(repo, gw, sched)

	gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(remoteConfig("cfg-1"), nil)
	if _, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "intel"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	return store, gw, repo, sched
}

func TestConfigurationStore_Create(t *testing.T) {
	t.Run("invalid platform", func(t *testing.T) {
		store := newStore(nil, nil, nil)
		_, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "arm"})
		if !errors.Is(err, ErrInvalidPlatform) {
			t.Fatalf("expected ErrInvalidPlatform, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		store := newStore(nil, nil, nil)
		_, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "amd", BudgetTarget: -1})
		if !errors.Is(err, ErrInvalidBudget) {
			t.Fatalf("expected ErrInvalidBudget, got %v", err)
		}
	})

	t.Run("remote failure leaves session untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := draftRepo(t)
		gw := mock_interfaces.NewMockIConfigurationGateway(ctrl)
		store := newStore(repo, gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Configuration{}, errors.New("503"))

		_, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "intel"})
		if !errors.Is(err, ErrRemoteCreate) {
			t.Fatalf("expected ErrRemoteCreate, got %v", err)
		}
		s, _ := repo.GetByID(context.Background(), "s-1")
		if s.HasConfiguration() || s.Step != entities.StepPlatform || s.Lifecycle != entities.LifecycleDraft {
			t.Fatalf("session changed on failure: %+v", s)
		}
	})

	t.Run("success sends defaults and advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := draftRepo(t)
		gw := mock_interfaces.NewMockIConfigurationGateway(ctrl)
		store := newStore(repo, gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.CreateConfigurationInput) (entities.Configuration, error) {
				if in.Platform != entities.PlatformAMD || in.UseCase != "General" || in.ConfigName != "Custom Build" || in.SessionID != "s-1" || in.BudgetTarget != 1200 {
					t.Fatalf("unexpected create input: %+v", in)
				}
				return remoteConfig("cfg-7"), nil
			},
		)

		s, err := store.Create(context.Background(), " s-1 ", CreateConfigurationCommand{Platform: "AMD", BudgetTarget: 1200})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if s.Configuration == nil || s.Configuration.ID != "cfg-7" {
			t.Fatalf("expected configuration cfg-7, got %+v", s.Configuration)
		}
		if s.Step != entities.StepComponents || s.Lifecycle != entities.LifecycleActive {
			t.Fatalf("expected components/active, got %s/%s", s.Step, s.Lifecycle)
		}
		if s.Configuration.Pricing != (entities.Pricing{}) {
			t.Fatalf("expected zero pricing, got %+v", s.Configuration.Pricing)
		}
		if !s.ExpiresAt.Equal(fixedNow.Add(2 * time.Hour)) {
			t.Fatalf("expected sliding expiry, got %v", s.ExpiresAt)
		}
	})

	t.Run("already configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _, _, _ := activeStore(t, ctrl)

		_, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "intel"})
		if !errors.Is(err, ErrConfigurationExists) {
			t.Fatalf("expected ErrConfigurationExists, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		store := newStore(repository.NewSessionMemoryRepository(), nil, nil)
		_, err := store.Create(context.Background(), "nope", CreateConfigurationCommand{Platform: "intel"})
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestConfigurationStore_AddComponent(t *testing.T) {
	t.Run("validation before remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _, _, sched := activeStore(t, ctrl)

		cases := []struct {
			category  string
			productID string
			quantity  int
			want      error
		}{
			{"soundCard", "x", 1, ErrInvalidCategory},
			{"processor", " ", 1, ErrInvalidProductID},
			{"processor", "cpu-1", -1, ErrInvalidQuantity},
		}
		for _, c := range cases {
			if _, err := store.AddComponent(context.Background(), "s-1", c.category, c.productID, c.quantity); !errors.Is(err, c.want) {
				t.Fatalf("%s/%q: expected %v, got %v", c.category, c.productID, c.want, err)
			}
		}
		if sched.count() != 0 {
			t.Fatalf("expected no re-check scheduled")
		}
	})

	t.Run("snapshot replaces state and pricing is derived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, gw, _, sched := activeStore(t, ctrl)

		gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryProcessor, "cpu-1", 1).Return(
			remoteConfig("cfg-1", with(entities.CategoryProcessor, sel("cpu-1", 20000, 1))), nil)
		gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryMotherboard, "mb-1", 1).Return(
			remoteConfig("cfg-1",
				with(entities.CategoryProcessor, sel("cpu-1", 20000, 1)),
				with(entities.CategoryMotherboard, sel("mb-1", 15000, 1)),
			), nil)

		if _, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-1", 0); err != nil {
			t.Fatalf("add processor: %v", err)
		}
		s, err := store.AddComponent(context.Background(), "s-1", "motherboard", "mb-1", 1)
		if err != nil {
			t.Fatalf("add motherboard: %v", err)
		}

		p := s.Configuration.Pricing
		if p.Subtotal != 35000 || p.Tax != 6300 || p.Total != 41300 {
			t.Fatalf("unexpected pricing: %+v", p)
		}
		if sched.count() != 2 {
			t.Fatalf("expected one re-check per mutation, got %d", sched.count())
		}
		last := sched.events[1]
		if last.SessionID != "s-1" || last.ConfigurationID != "cfg-1" || last.Seq != s.AppliedSeq {
			t.Fatalf("unexpected re-check event: %+v (applied seq %d)", last, s.AppliedSeq)
		}
	})

	t.Run("singular replace keeps one selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, gw, _, _ := activeStore(t, ctrl)

		gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryProcessor, "cpu-2", 1).Return(
			remoteConfig("cfg-1", with(entities.CategoryProcessor, sel("cpu-2", 300, 1))), nil)

		s, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-2", 1)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got, ok := s.Configuration.Components.Single(entities.CategoryProcessor)
		if !ok || got.ProductID != "cpu-2" {
			t.Fatalf("expected cpu-2, got %+v", got)
		}
	})

	t.Run("remote failure keeps local state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, gw, repo, sched := activeStore(t, ctrl)

		gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryMemory, "ram-1", 2).Return(entities.Configuration{}, errors.New("422"))

		_, err := store.AddComponent(context.Background(), "s-1", "memory", "ram-1", 2)
		if !errors.Is(err, ErrRemoteMutation) {
			t.Fatalf("expected ErrRemoteMutation, got %v", err)
		}
		s, _ := repo.GetByID(context.Background(), "s-1")
		if s.Configuration.Components.Has(entities.CategoryMemory) {
			t.Fatalf("memory should not be set after failure")
		}
		if sched.count() != 0 {
			t.Fatalf("expected no re-check after failure")
		}
	})

	t.Run("no configuration yet", func(t *testing.T) {
		store := newStore(draftRepo(t), nil, nil)
		_, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-1", 1)
		if !errors.Is(err, ErrNoConfiguration) {
			t.Fatalf("expected ErrNoConfiguration, got %v", err)
		}
	})
}

func TestConfigurationStore_RemoveComponent(t *testing.T) {
	threeDrives := func(c *entities.Components) {
		_ = c.Put(entities.CategoryStorage, sel("ssd-a", 100, 1))
		_ = c.Put(entities.CategoryStorage, sel("ssd-b", 110, 1))
		_ = c.Put(entities.CategoryStorage, sel("ssd-c", 120, 1))
	}

	setup := func(t *testing.T, ctrl *gomock.Controller) (*ConfigurationStore, *mock_interfaces.MockIConfigurationGateway) {
		store, gw, _, _ := activeStore(t, ctrl)
		gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryStorage, "ssd-c", 1).Return(remoteConfig("cfg-1", threeDrives), nil)
		if _, err := store.AddComponent(context.Background(), "s-1", "storage", "ssd-c", 1); err != nil {
			t.Fatalf("seed drives: %v", err)
		}
		return store, gw
	}

	t.Run("storage requires index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := setup(t, ctrl)
		_, err := store.RemoveComponent(context.Background(), "s-1", "storage", nil)
		if !errors.Is(err, ErrStorageIndexRequired) {
			t.Fatalf("expected ErrStorageIndexRequired, got %v", err)
		}
	})

	t.Run("storage index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := setup(t, ctrl)
		idx := 3
		_, err := store.RemoveComponent(context.Background(), "s-1", "storage", &idx)
		if !errors.Is(err, ErrStorageIndexOutOfRange) {
			t.Fatalf("expected ErrStorageIndexOutOfRange, got %v", err)
		}
	})

	t.Run("remove middle drive keeps order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, gw := setup(t, ctrl)

		gw.EXPECT().RemoveComponent(gomock.Any(), "cfg-1", entities.CategoryStorage, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.Category, idx *int) (entities.Configuration, error) {
				if idx == nil || *idx != 1 {
					t.Fatalf("expected index 1, got %v", idx)
				}
				return remoteConfig("cfg-1", func(c *entities.Components) {
					_ = c.Put(entities.CategoryStorage, sel("ssd-a", 100, 1))
					_ = c.Put(entities.CategoryStorage, sel("ssd-c", 120, 1))
				}), nil
			},
		)

		idx := 1
		s, err := store.RemoveComponent(context.Background(), "s-1", "storage", &idx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		drives := s.Configuration.Components.Storage()
		if len(drives) != 2 || drives[0].ProductID != "ssd-a" || drives[1].ProductID != "ssd-c" {
			t.Fatalf("unexpected drives: %+v", drives)
		}
		if s.Configuration.Pricing.Subtotal != 220 {
			t.Fatalf("expected subtotal 220, got %v", s.Configuration.Pricing.Subtotal)
		}
	})

	t.Run("singular clear sends no index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, gw, _, _ := activeStore(t, ctrl)

		gw.EXPECT().RemoveComponent(gomock.Any(), "cfg-1", entities.CategoryCooling, nil).Return(remoteConfig("cfg-1"), nil)

		idx := 4
		if _, err := store.RemoveComponent(context.Background(), "s-1", "cooling", &idx); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestConfigurationStore_StaleSnapshotDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, gw, repo, sched := activeStore(t, ctrl)

	// The first request's response arrives after the second request completed.
	firstCalled := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryProcessor, "cpu-old", 1).DoAndReturn(
		func(context.Context, string, entities.Category, string, int) (entities.Configuration, error) {
			close(firstCalled)
			<-release
			return remoteConfig("cfg-1", with(entities.CategoryProcessor, sel("cpu-old", 100, 1))), nil
		},
	)
	gw.EXPECT().AddComponent(gomock.Any(), "cfg-1", entities.CategoryProcessor, "cpu-new", 1).Return(
		remoteConfig("cfg-1", with(entities.CategoryProcessor, sel("cpu-new", 200, 1))), nil)

	done := make(chan error, 1)
	go func() {
		_, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-old", 1)
		done <- err
	}()
	<-firstCalled

	if _, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-new", 1); err != nil {
		t.Fatalf("second add: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first add: %v", err)
	}

	s, _ := repo.GetByID(context.Background(), "s-1")
	got, _ := s.Configuration.Components.Single(entities.CategoryProcessor)
	if got.ProductID != "cpu-new" {
		t.Fatalf("stale snapshot overwrote newer one: %s", got.ProductID)
	}
	if s.Configuration.Pricing.Subtotal != 200 {
		t.Fatalf("pricing follows the applied snapshot, got %+v", s.Configuration.Pricing)
	}
	if sched.count() != 2 {
		t.Fatalf("each successful mutation schedules a re-check, got %d", sched.count())
	}
}

func TestConfigurationStore_ClosedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, _, repo, _ := activeStore(t, ctrl)

	if _, err := repo.UpdateState(context.Background(), "s-1", entities.StepComponents, entities.LifecycleAbandoned); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	_, err := store.AddComponent(context.Background(), "s-1", "processor", "cpu-1", 1)
	if !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestConfigurationStore_ChangeAtReviewReturnsToComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store, gw, repo, sched := activeStore(t, ctrl)
	ctx := context.Background()

	if _, err := repo.UpdateState(ctx, "s-1", entities.StepReview, entities.LifecycleActive); err != nil {
		t.Fatalf("seed review: %v", err)
	}
	gw.EXPECT().RemoveComponent(gomock.Any(), "cfg-1", entities.CategoryProcessor, nil).Return(remoteConfig("cfg-1"), nil)

	s, err := store.RemoveComponent(ctx, "s-1", "processor", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Step != entities.StepComponents || s.Lifecycle != entities.LifecycleActive {
		t.Fatalf("expected active session back on components, got %s/%s", s.Step, s.Lifecycle)
	}
	if sched.count() != 1 {
		t.Fatalf("expected one re-check, got %d", sched.count())
	}

	checkout := NewCheckoutUseCase(CheckoutUseCaseDeps{
		Sessions: repo,
		Gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		Now:      func() time.Time { return fixedNow },
	})
	if _, err := checkout.Complete(ctx, "s-1", nil); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestConfigurationStore_CreateOnClosedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := draftRepo(t)
	gw := mock_interfaces.NewMockIConfigurationGateway(ctrl)
	store := newStore(repo, gw, nil)

	// abandoned while the remote create is in flight
	gw.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, interfaces.CreateConfigurationInput) (entities.Configuration, error) {
			if _, err := repo.UpdateState(context.Background(), "s-1", entities.StepPlatform, entities.LifecycleAbandoned); err != nil {
				t.Fatalf("abandon: %v", err)
			}
			return remoteConfig("cfg-1"), nil
		},
	)

	_, err := store.Create(context.Background(), "s-1", CreateConfigurationCommand{Platform: "intel"})
	if !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	s, _ := repo.GetByID(context.Background(), "s-1")
	if s.Lifecycle != entities.LifecycleAbandoned {
		t.Fatalf("abandoned lifecycle must survive, got %s", s.Lifecycle)
	}
}
