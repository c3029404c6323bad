package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"secure-intent-router/internal/audit"
	"secure-intent-router/internal/cache"
	"secure-intent-router/internal/cache/memory"
	"secure-intent-router/internal/chat"
	"secure-intent-router/internal/chat/usecase"
	"secure-intent-router/internal/delegate"
	"secure-intent-router/internal/intent"
	"secure-intent-router/internal/model"
	"secure-intent-router/internal/operation"
	"secure-intent-router/internal/operation/repository"
	opusecase "secure-intent-router/internal/operation/usecase"
	"secure-intent-router/internal/router"
	"secure-intent-router/pkg/log"
)

const (
	tenantA = "6f1c3d52-8a43-4b8e-9a53-0c3e2f6b1a01"
	tenantB = "0b7e4c1a-2d9f-4f6e-8c55-7a1b3c9d2e02"
)

// countingRepo records every storage call.
type countingRepo struct {
	mu        sync.Mutex
	projects  []operation.Project
	suppliers []operation.Supplier
	err       error
	calls     int
	lastList  repository.ListProjectsOptions
}

func (r *countingRepo) hit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRepo) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *countingRepo) ListProjects(ctx context.Context, opt repository.ListProjectsOptions) ([]operation.Project, error) {
	if err := r.hit(); err != nil {
		return nil, err
	}
	r.lastList = opt
	var out []operation.Project
	for _, p := range r.projects {
		if p.TenantID == opt.TenantID && (opt.Status == "" || string(p.Status) == opt.Status) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *countingRepo) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (operation.Project, error) {
	if err := r.hit(); err != nil {
		return operation.Project{}, err
	}
	p := operation.Project{ID: "new", TenantID: opt.TenantID, Name: opt.Name, Owner: opt.Owner, Status: operation.ProjectStatus(opt.Status)}
	r.projects = append(r.projects, p)
	return p, nil
}

func (r *countingRepo) UpdateProjectStatus(ctx context.Context, opt repository.UpdateProjectStatusOptions) (operation.Project, error) {
	if err := r.hit(); err != nil {
		return operation.Project{}, err
	}
	return operation.Project{}, nil
}

func (r *countingRepo) ListSuppliers(ctx context.Context, opt repository.ListSuppliersOptions) ([]operation.Supplier, error) {
	if err := r.hit(); err != nil {
		return nil, err
	}
	var out []operation.Supplier
	for _, s := range r.suppliers {
		if s.TenantID == opt.TenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *countingRepo) CreateSupplier(ctx context.Context, opt repository.CreateSupplierOptions) (operation.Supplier, error) {
	if err := r.hit(); err != nil {
		return operation.Supplier{}, err
	}
	return operation.Supplier{ID: "s", TenantID: opt.TenantID, Name: opt.Name}, nil
}

func (r *countingRepo) SumProjectCosts(ctx context.Context, opt repository.SumProjectCostsOptions) ([]operation.ProjectCost, error) {
	if err := r.hit(); err != nil {
		return nil, err
	}
	return nil, nil
}

// downStore fails every call.
type downStore struct{}

func (downStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("connection refused") }
func (downStore) SetEx(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
func (downStore) Scan(context.Context, string) ([]string, error) {
	return nil, errors.New("connection refused")
}
func (downStore) Del(context.Context, ...string) (int64, error) {
	return 0, errors.New("connection refused")
}
func (downStore) Info(context.Context) (map[string]string, error) {
	return nil, errors.New("connection refused")
}

type fakeDelegate struct {
	decision delegate.Decision
	err      error
	calls    int
	lastOpt  delegate.Options
}

func (f *fakeDelegate) Interpret(ctx context.Context, message string, opt delegate.Options) (delegate.Decision, error) {
	f.calls++
	f.lastOpt = opt
	if f.decision.Model == "" {
		f.decision.Model = opt.Model
	}
	return f.decision, f.err
}

type fixture struct {
	repo    *countingRepo
	history *audit.History
	uc      chat.UseCase
}

func newFixture(t *testing.T, store cache.Store, dlg usecase.Delegator) fixture {
	t.Helper()
	l := log.NewNop()
	if store == nil {
		store = memory.New(memory.Options{})
	}
	repo := &countingRepo{
		projects: []operation.Project{
			{ID: "p1", TenantID: tenantA, Name: "Casa Alfa", Status: operation.StatusInProgress},
			{ID: "p2", TenantID: tenantA, Name: "Galpão Beta", Status: operation.StatusFinished},
			{ID: "p3", TenantID: tenantB, Name: "Prédio Gama", Status: operation.StatusInProgress},
		},
		suppliers: []operation.Supplier{{ID: "s1", TenantID: tenantA, Name: "Cimento Forte", Active: true}},
	}
	history := audit.NewHistory(100, nil, l)
	deps := usecase.Deps{
		Classifier: intent.New(),
		Router:     router.New(router.Config{}),
		Registry:   opusecase.New(repo, l, opusecase.Options{}),
		Cache:      cache.New(store, l, cache.Options{}),
		History:    history,
	}
	if dlg != nil {
		deps.Delegate = dlg
	}
	return fixture{repo: repo, history: history, uc: usecase.New(l, deps)}
}

func scope(tenant string) model.Scope { return model.Scope{TenantID: tenant} }

func TestDispatch_ActiveProjectsScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	in := chat.DispatchInput{Message: "quais obras estão ativas?"}

	first, err := f.uc.Dispatch(ctx, scope(tenantA), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Operation != operation.GetActiveProjects || first.FromCache || !first.Success {
		t.Fatalf("unexpected first output: %+v", first)
	}
	if f.repo.lastList.Status != "Em andamento" || f.repo.lastList.TenantID != tenantA {
		t.Errorf("unexpected storage filter: %+v", f.repo.lastList)
	}

	second, err := f.uc.Dispatch(ctx, scope(tenantA), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache {
		t.Errorf("expected second call from cache")
	}
	if f.repo.Calls() != 1 {
		t.Errorf("expected a single registry call, got %d", f.repo.Calls())
	}

	a, _ := first.Data.([]operation.Project)
	b, _ := second.Data.([]operation.Project)
	if len(a) != 1 || len(b) != 1 || a[0].ID != b[0].ID || a[0].Name != b[0].Name {
		t.Errorf("cached data differs: %+v vs %+v", a, b)
	}
	if first.Response != second.Response {
		t.Errorf("responses differ: %q vs %q", first.Response, second.Response)
	}

	records := f.history.List(tenantA, 0)
	if len(records) != 2 || !records[0].FromCache || records[1].FromCache {
		t.Errorf("unexpected audit trail: %+v", records)
	}
}

func TestDispatch_TenantsDoNotShareCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	in := chat.DispatchInput{Message: "obras em andamento"}

	if _, err := f.uc.Dispatch(ctx, scope(tenantA), in); err != nil {
		t.Fatal(err)
	}
	out, err := f.uc.Dispatch(ctx, scope(tenantB), in)
	if err != nil {
		t.Fatal(err)
	}
	if out.FromCache {
		t.Fatalf("tenant B must not read tenant A's entry")
	}
	projects := out.Data.([]operation.Project)
	if len(projects) != 1 || projects[0].TenantID != tenantB {
		t.Errorf("unexpected data for tenant B: %+v", projects)
	}
}

func TestDispatch_FailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	f.repo.err = errors.New(`ERROR: relation "projects" does not exist (SQLSTATE 42P01)`)
	in := chat.DispatchInput{Message: "listar todas as obras"}

	out, err := f.uc.Dispatch(ctx, scope(tenantA), in)
	if !errors.Is(err, operation.ErrOperationFailed) {
		t.Fatalf("expected ErrOperationFailed, got %v", err)
	}
	if out.Success || out.Response != opusecase.MsgListProjectsFailed {
		t.Errorf("unexpected failure output: %+v", out)
	}

	records := f.history.List(tenantA, 0)
	if len(records) != 1 || records[0].Success || records[0].ErrorKind != audit.KindOperationFailure {
		t.Errorf("unexpected audit record: %+v", records)
	}

	f.repo.err = nil
	out, err = f.uc.Dispatch(ctx, scope(tenantA), in)
	if err != nil || out.FromCache {
		t.Fatalf("failure must not populate the cache, got %+v (%v)", out, err)
	}
	if f.repo.Calls() != 2 {
		t.Errorf("expected 2 registry calls, got %d", f.repo.Calls())
	}
}

func TestDispatch_WriteInvalidatesTenantCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	read := chat.DispatchInput{Message: "minhas obras"}

	if _, err := f.uc.Dispatch(ctx, scope(tenantA), read); err != nil {
		t.Fatal(err)
	}

	out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{
		Message: "criar uma nova obra",
		Params:  map[string]any{"name": "Residencial Delta", "owner": "Ana"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Operation != operation.CreateProject || out.Response != `Obra "Residencial Delta" criada com sucesso.` {
		t.Errorf("unexpected create output: %+v", out)
	}

	after, err := f.uc.Dispatch(ctx, scope(tenantA), read)
	if err != nil {
		t.Fatal(err)
	}
	if after.FromCache {
		t.Fatalf("read after write must not come from cache")
	}
	if got := len(after.Data.([]operation.Project)); got != 3 {
		t.Errorf("expected 3 projects after the write, got %d", got)
	}
}

func TestDispatch_ValidationNeverReachesStorage(t *testing.T) {
	f := newFixture(t, nil, nil)

	out, err := f.uc.Dispatch(context.Background(), scope(tenantA), chat.DispatchInput{
		Message: "cadastrar obra",
		Params:  map[string]any{"name": "X", "owner": "Ana", "status": "Cancelada"},
	})
	if !errors.Is(err, operation.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if out.Success {
		t.Errorf("expected failure output")
	}
	if f.repo.Calls() != 0 {
		t.Errorf("expected no storage call, got %d", f.repo.Calls())
	}
	if rec := f.history.List(tenantA, 1); len(rec) != 1 || rec[0].ErrorKind != audit.KindValidation {
		t.Errorf("unexpected audit record: %+v", rec)
	}
}

func TestDispatch_CacheUnavailableBehavesLikeMiss(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, downStore{}, nil)
	in := chat.DispatchInput{Message: "quais são os meus fornecedores"}

	for i := 0; i < 2; i++ {
		out, err := f.uc.Dispatch(ctx, scope(tenantA), in)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if out.FromCache || len(out.Data.([]operation.Supplier)) != 1 {
			t.Fatalf("call %d: unexpected output %+v", i, out)
		}
	}
	if f.repo.Calls() != 2 {
		t.Errorf("expected registry on every call, got %d", f.repo.Calls())
	}
}

func TestDispatch_CancelledCallerStillAudits(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "obras ativas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || f.repo.Calls() != 1 {
		t.Errorf("registry call must complete, got %+v", out)
	}
	if len(f.history.List(tenantA, 0)) != 1 {
		t.Errorf("expected an audit record")
	}
}

func TestDispatch_Unclassified(t *testing.T) {
	ctx := context.Background()

	t.Run("assessment without delegate", func(t *testing.T) {
		f := newFixture(t, nil, nil)

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "gerar relatório de tendências de custos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Assessment == nil {
			t.Fatalf("expected an assessment")
		}
		if !out.Assessment.NeedsExternalModel || out.Assessment.Tier != router.TierComplex || out.Assessment.Model != router.ModelClaudeSonnet {
			t.Errorf("unexpected assessment: %+v", out.Assessment)
		}
		if out.Operation != "" || f.repo.Calls() != 0 {
			t.Errorf("nothing must execute, got %+v", out)
		}
	})

	t.Run("direct query", func(t *testing.T) {
		f := newFixture(t, nil, &fakeDelegate{})

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "lançamentos pendentes"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Path != chat.PathDirect || out.Assessment.NeedsExternalModel {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("delegate picks a whitelisted operation", func(t *testing.T) {
		dlg := &fakeDelegate{decision: delegate.Decision{Operation: operation.ListSuppliers}}
		f := newFixture(t, nil, dlg)

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "preciso falar com quem me vende cimento"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Path != chat.PathDelegated || out.Operation != operation.ListSuppliers || out.Model != router.ModelClaudeHaiku {
			t.Errorf("unexpected output: %+v", out)
		}
		if f.repo.Calls() != 1 {
			t.Errorf("expected one registry call, got %d", f.repo.Calls())
		}
	})

	t.Run("delegate proposes an unknown operation", func(t *testing.T) {
		dlg := &fakeDelegate{err: delegate.ErrUnknownOperationFromDelegate}
		f := newFixture(t, nil, dlg)

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "apague todos os dados"})
		if !errors.Is(err, delegate.ErrUnknownOperationFromDelegate) {
			t.Fatalf("expected ErrUnknownOperationFromDelegate, got %v", err)
		}
		if out.Success || f.repo.Calls() != 0 {
			t.Errorf("nothing must execute, got %+v", out)
		}
		rec := f.history.List(tenantA, 0)
		if len(rec) != 1 || rec[0].ErrorKind != audit.KindDelegateUnknown {
			t.Errorf("unexpected audit trail: %+v", rec)
		}
	})

	t.Run("delegate plain answer", func(t *testing.T) {
		dlg := &fakeDelegate{decision: delegate.Decision{Answer: "Olá! Posso ajudar com suas obras."}}
		f := newFixture(t, nil, dlg)

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "bom dia"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Path != chat.PathAnswered || out.Response != "Olá! Posso ajudar com suas obras." {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("delegate down degrades to a message", func(t *testing.T) {
		dlg := &fakeDelegate{err: delegate.ErrDelegateFailed}
		f := newFixture(t, nil, dlg)

		out, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "bom dia"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success || out.Response != usecase.TextDelegateDown || out.Assessment == nil {
			t.Errorf("unexpected output: %+v", out)
		}
	})
}

func TestDispatch_InputChecks(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()

	if _, err := f.uc.Dispatch(ctx, scope(tenantA), chat.DispatchInput{Message: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := f.uc.Dispatch(ctx, model.Scope{}, chat.DispatchInput{Message: "obras ativas"}); !errors.Is(err, operation.ErrMissingTenant) {
		t.Errorf("expected ErrMissingTenant, got %v", err)
	}
}

func TestInvalidateCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	in := chat.DispatchInput{Message: "obras ativas"}

	_, _ = f.uc.Dispatch(ctx, scope(tenantA), in)
	_, _ = f.uc.Dispatch(ctx, scope(tenantB), in)

	n, err := f.uc.InvalidateCache(ctx, scope(tenantA))
	if err != nil || n != 1 {
		t.Fatalf("expected 1 invalidated entry, got %d (%v)", n, err)
	}

	out, _ := f.uc.Dispatch(ctx, scope(tenantB), in)
	if !out.FromCache {
		t.Errorf("tenant B's entry must survive tenant A's invalidation")
	}
}
