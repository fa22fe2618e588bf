package warehouse

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/clock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un almacén compartido y un TxRunner que emula la
// serialización por bloqueo de fila (mutex por transacción) y el rollback
// (snapshot del estado, restaurado si fn falla).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu         sync.Mutex
	products   map[int64]bool
	warehouses map[int64]bool
	orders     map[int64]*entity.Order
	receipts   map[int64]*entity.Receipt
	nextID     int64

	failReceiptInsert error // fuerza un fallo en el insert de la recepción
	runCalls          int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:   map[int64]bool{},
		warehouses: map[int64]bool{},
		orders:     map[int64]*entity.Order{},
		receipts:   map[int64]*entity.Receipt{},
		nextID:     1,
	}
}

func (s *fakeStore) snapshot() (map[int64]*entity.Order, map[int64]*entity.Receipt, int64) {
	orders := make(map[int64]*entity.Order, len(s.orders))
	for id, o := range s.orders {
		cp := *o
		if o.FulfilledAt != nil {
			t := *o.FulfilledAt
			cp.FulfilledAt = &t
		}
		orders[id] = &cp
	}
	receipts := make(map[int64]*entity.Receipt, len(s.receipts))
	for id, r := range s.receipts {
		cp := *r
		receipts[id] = &cp
	}
	return orders, receipts, s.nextID
}

// Run emula el contrato transaccional: exclusión mutua durante la tx y
// restauración del estado previo cuando fn retorna error.
func (s *fakeStore) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runCalls++

	orders, receipts, nextID := s.snapshot()
	repos := &fakeRepos{store: s}
	if err := fn(repos, warehouseView{repos}, repos, receiptView{repos}); err != nil {
		s.orders, s.receipts, s.nextID = orders, receipts, nextID
		return err
	}
	return nil
}

type fakeRepos struct {
	store *fakeStore
}

func (f *fakeRepos) Exists(id int64) (bool, error) { return f.store.products[id], nil }

func (f *fakeRepos) GetByID(id int64) (*entity.Product, error) {
	if !f.store.products[id] {
		return nil, nil
	}
	return &entity.Product{ID: id}, nil
}

// fakeRepos cumple los cuatro puertos; para Warehouse se usan métodos aparte
// vía el wrapper de abajo, porque las firmas de Product y Warehouse coinciden.

func (f *fakeRepos) FindEligibleForUpdate(productID, amount int64, before time.Time) (*entity.Order, error) {
	var best *entity.Order
	for _, o := range f.store.orders {
		if o.ProductID != productID || o.Amount != amount || !o.CreatedAt.Before(before) {
			continue
		}
		if best == nil || o.CreatedAt.Before(best.CreatedAt) ||
			(o.CreatedAt.Equal(best.CreatedAt) && o.ID < best.ID) {
			best = o
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (f *fakeRepos) MarkFulfilled(orderID int64, fulfilledAt time.Time) error {
	o, ok := f.store.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	t := fulfilledAt
	o.FulfilledAt = &t
	return nil
}

func (f *fakeRepos) ExistsForOrder(orderID int64) (bool, error) {
	for _, r := range f.store.receipts {
		if r.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepos) Create(receipt *entity.Receipt) error {
	if f.store.failReceiptInsert != nil {
		return f.store.failReceiptInsert
	}
	for _, r := range f.store.receipts {
		if r.OrderID == receipt.OrderID {
			return domain.ErrOrderFulfilled
		}
	}
	receipt.ID = f.store.nextID
	f.store.nextID++
	cp := *receipt
	f.store.receipts[receipt.ID] = &cp
	return nil
}

func (f *fakeRepos) List(limit, offset int) ([]*entity.Receipt, error) { return nil, nil }

// warehouseView diferencia la existencia de bodegas de la de productos
// (las firmas de ambos puertos coinciden salvo el tipo de GetByID).
type warehouseView struct {
	*fakeRepos
}

func (w warehouseView) Exists(id int64) (bool, error) { return w.store.warehouses[id], nil }

func (w warehouseView) GetByID(id int64) (*entity.Warehouse, error) {
	if !w.store.warehouses[id] {
		return nil, nil
	}
	return &entity.Warehouse{ID: id}, nil
}

// receiptView resuelve GetByID para recepciones (mismo truco que warehouseView:
// las firmas de los puertos coinciden salvo el tipo de retorno).
type receiptView struct {
	*fakeRepos
}

func (r receiptView) GetByID(id int64) (*entity.Receipt, error) {
	rec, ok := r.store.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// Los fakes deben cumplir los cuatro puertos que el runner entrega a fn.
var (
	_ repository.ProductRepository   = (*fakeRepos)(nil)
	_ repository.WarehouseRepository = warehouseView{}
	_ repository.OrderRepository     = (*fakeRepos)(nil)
	_ repository.ReceiptRepository   = receiptView{}
)

type fakeProc struct {
	calls int
	id    int64
	err   error
}

func (p *fakeProc) AddProductToWarehouse(_ context.Context, _, _, _ int64, _ time.Time) (int64, error) {
	p.calls++
	return p.id, p.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	testNow     = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	testRequest = dto.ProductWarehouseRequest{
		ProductID:   1,
		WarehouseID: 1,
		Amount:      5,
		CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
)

func newUseCase(store *fakeStore, proc *fakeProc) *AddProductUseCase {
	if proc == nil {
		proc = &fakeProc{}
	}
	return NewAddProductUseCase(store, proc, clock.NewFixed(testNow))
}

// seedScenario: Producto 1 y Bodega 1 existen; orden sin surtir
// (producto 1, cantidad 5, precio 10.00, creada 2024-01-01).
func seedScenario(store *fakeStore) {
	store.products[1] = true
	store.warehouses[1] = true
	store.orders[10] = &entity.Order{
		ID:        10,
		ProductID: 1,
		Amount:    5,
		Price:     decimal.RequireFromString("10.00"),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_RecepcionExitosa(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	uc := newUseCase(store, nil)

	id, err := uc.AddProduct(context.Background(), testRequest)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	receipt := store.receipts[id]
	require.NotNil(t, receipt, "la recepción debe quedar persistida")
	assert.True(t, receipt.Price.Equal(decimal.RequireFromString("50.00")),
		"precio total = unitario × cantidad, obtuvo %s", receipt.Price)
	assert.Equal(t, int64(10), receipt.OrderID)
	assert.Equal(t, testNow, receipt.CreatedAt, "timestamp del reloj del motor, no del request")

	order := store.orders[10]
	require.NotNil(t, order.FulfilledAt, "la orden debe quedar surtida")
	assert.Equal(t, testNow, *order.FulfilledAt)
}

func TestAddProduct_SegundaRecepcionConflicto(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	uc := newUseCase(store, nil)

	_, err := uc.AddProduct(context.Background(), testRequest)
	require.NoError(t, err)

	_, err = uc.AddProduct(context.Background(), testRequest)
	require.ErrorIs(t, err, domain.ErrOrderFulfilled)
	assert.Len(t, store.receipts, 1, "no debe crearse una segunda recepción")
}

func TestAddProduct_ValidacionCortaAntesDeLaBD(t *testing.T) {
	casos := map[string]dto.ProductWarehouseRequest{
		"cantidad cero":     {ProductID: 1, WarehouseID: 1, Amount: 0, CreatedAt: testNow},
		"cantidad negativa": {ProductID: 1, WarehouseID: 1, Amount: -3, CreatedAt: testNow},
		"sin producto":      {WarehouseID: 1, Amount: 5, CreatedAt: testNow},
		"sin bodega":        {ProductID: 1, Amount: 5, CreatedAt: testNow},
		"sin fecha":         {ProductID: 1, WarehouseID: 1, Amount: 5},
	}
	for nombre, req := range casos {
		t.Run(nombre, func(t *testing.T) {
			store := newFakeStore()
			seedScenario(store)
			proc := &fakeProc{}
			uc := newUseCase(store, proc)

			_, err := uc.AddProduct(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, store.runCalls, "el motor no debe invocarse")

			_, err = uc.AddProductStoredProcedure(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, proc.calls, "la función almacenada no debe invocarse")
		})
	}
}

func TestAddProduct_ProductoNoExiste(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	delete(store.products, 1)
	uc := newUseCase(store, nil)

	_, err := uc.AddProduct(context.Background(), testRequest)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, store.receipts)
	assert.Nil(t, store.orders[10].FulfilledAt)
}

func TestAddProduct_BodegaNoExiste(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	req := testRequest
	req.WarehouseID = 99
	uc := newUseCase(store, nil)

	_, err := uc.AddProduct(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	assert.Empty(t, store.receipts, "ningún write debe persistir")
	assert.Nil(t, store.orders[10].FulfilledAt)
}

func TestAddProduct_SinOrdenElegible(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	uc := newUseCase(store, nil)

	t.Run("cantidad distinta", func(t *testing.T) {
		req := testRequest
		req.Amount = 7
		_, err := uc.AddProduct(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("orden posterior al request", func(t *testing.T) {
		req := testRequest
		req.CreatedAt = time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.AddProduct(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	assert.Empty(t, store.receipts)
	assert.Nil(t, store.orders[10].FulfilledAt)
}

func TestAddProduct_FalloEntreEscriturasRevierteTodo(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	forced := assert.AnError
	store.failReceiptInsert = forced
	uc := newUseCase(store, nil)

	_, err := uc.AddProduct(context.Background(), testRequest)
	require.ErrorIs(t, err, forced, "el error debe propagarse sin transformar")

	// La orden quedó marcada dentro de la tx, pero el rollback la restaura.
	assert.Nil(t, store.orders[10].FulfilledAt, "el surtido debe revertirse")
	assert.Empty(t, store.receipts)

	// El mismo request tras reparar el fallo funciona: nada persistió del intento.
	store.failReceiptInsert = nil
	id, err := uc.AddProduct(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestAddProduct_FalloEsIdempotente(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	req := testRequest
	req.Amount = 7 // sin orden elegible
	uc := newUseCase(store, nil)

	_, err1 := uc.AddProduct(context.Background(), req)
	_, err2 := uc.AddProduct(context.Background(), req)
	require.ErrorIs(t, err1, domain.ErrOrderNotFound)
	require.ErrorIs(t, err2, domain.ErrOrderNotFound, "reintentar produce el mismo fallo")
	assert.Empty(t, store.receipts)
}

func TestAddProduct_PrecioDecimalExacto(t *testing.T) {
	store := newFakeStore()
	store.products[1] = true
	store.warehouses[1] = true
	store.orders[20] = &entity.Order{
		ID:        20,
		ProductID: 1,
		Amount:    3,
		Price:     decimal.RequireFromString("19.99"),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	uc := newUseCase(store, nil)

	req := testRequest
	req.Amount = 3
	id, err := uc.AddProduct(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, store.receipts[id].Price.Equal(decimal.RequireFromString("59.97")),
		"19.99 × 3 = 59.97 exacto, obtuvo %s", store.receipts[id].Price)
}

func TestAddProduct_DesempateDeterminista(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	// Segunda orden elegible, más antigua: debe ganar.
	store.orders[5] = &entity.Order{
		ID:        5,
		ProductID: 1,
		Amount:    5,
		Price:     decimal.RequireFromString("8.00"),
		CreatedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	uc := newUseCase(store, nil)

	id, err := uc.AddProduct(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Equal(t, int64(5), store.receipts[id].OrderID, "gana la orden con created_at más antiguo")
}

func TestAddProduct_ConcurrenciaUnaSolaRecepcion(t *testing.T) {
	store := newFakeStore()
	seedScenario(store)
	uc := newUseCase(store, nil)

	const callers = 2
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddProduct(context.Background(), testRequest)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, conflictos int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case errors.Is(err, domain.ErrOrderFulfilled):
			conflictos++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una invocación debe ganar")
	assert.Equal(t, 1, conflictos, "la otra debe recibir conflicto")
	assert.Len(t, store.receipts, 1, "nunca dos recepciones para una orden")
}

func TestAddProductStoredProcedure_DelegaAlRunner(t *testing.T) {
	store := newFakeStore()
	proc := &fakeProc{id: 42}
	uc := newUseCase(store, proc)

	id, err := uc.AddProductStoredProcedure(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, proc.calls)
	assert.Zero(t, store.runCalls, "la ruta almacenada no abre tx desde la app")
}
