package impl

import (
	"context"
	"sync"
	"testing"

	"handloom/internal/domain/entity"
	domainerrors "handloom/internal/domain/errors"
	"handloom/internal/domain/repository"
	mockSvc "handloom/internal/mocks/service"
	"handloom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStore serializes transactions the way a row lock serializes buyers of
// one product. Writes are staged and only applied when the body succeeds.
type memoryStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]entity.Product
	orders   []*entity.Order
}

func newMemoryStore(products ...*entity.Product) *memoryStore {
	store := &memoryStore{products: make(map[uuid.UUID]entity.Product)}
	for _, p := range products {
		store.products[p.ID] = *p
	}

	return store
}

func (s *memoryStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{
		products: make(map[uuid.UUID]entity.Product, len(s.products)),
	}
	for id, p := range s.products {
		tx.products[id] = p
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.products = tx.products
	s.orders = append(s.orders, tx.orders...)

	return nil
}

func (s *memoryStore) product(id uuid.UUID) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products[id]
}

type memoryTx struct {
	products map[uuid.UUID]entity.Product
	orders   []*entity.Order
}

func (tx *memoryTx) NewUserRepository() repository.UserRepository       { return nil }
func (tx *memoryTx) NewGroupRepository() repository.GroupRepository     { return nil }
func (tx *memoryTx) NewMessageRepository() repository.MessageRepository { return nil }
func (tx *memoryTx) NewProductRepository() repository.ProductRepository { return memoryProducts{tx} }
func (tx *memoryTx) NewOrderRepository() repository.OrderRepository     { return memoryOrders{tx} }

type memoryProducts struct{ tx *memoryTx }

func (r memoryProducts) Create(_ context.Context, p *entity.Product) error {
	r.tx.products[p.ID] = *p

	return nil
}

func (r memoryProducts) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.tx.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &p, nil
}

func (r memoryProducts) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.FindByID(ctx, id)
}

func (r memoryProducts) ListAvailable(context.Context, entity.ProductFilter) ([]*entity.Product, error) {
	return nil, errors.New("not supported")
}

func (r memoryProducts) Update(_ context.Context, p *entity.Product, patch *entity.ProductPatch) error {
	stored, ok := r.tx.products[p.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	r.tx.products[p.ID] = applyPatchedColumns(stored, p, patch)

	return nil
}

// applyPatchedColumns copies only the columns the patch sets, like the SQL update.
func applyPatchedColumns(stored entity.Product, p *entity.Product, patch *entity.ProductPatch) entity.Product {
	if patch.Name != nil {
		stored.Name = p.Name
	}
	if patch.Description != nil {
		stored.Description = p.Description
	}
	if patch.Price != nil {
		stored.Price = p.Price
	}
	if patch.Category != nil {
		stored.Category = p.Category
	}
	if patch.Image != nil {
		stored.Image = p.Image
	}
	if patch.TouchesStock() {
		stored.StockQuantity = p.StockQuantity
		stored.IsAvailable = p.IsAvailable
	}

	return stored
}

func (r memoryProducts) UpdateStock(_ context.Context, id uuid.UUID, stock int, isAvailable bool) error {
	p, ok := r.tx.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.StockQuantity = stock
	p.IsAvailable = isAvailable
	r.tx.products[id] = p

	return nil
}

func (r memoryProducts) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tx.products, id)

	return nil
}

// liveProducts reads and writes the store outside any transaction. afterRead
// runs between a read and the caller's next step.
type liveProducts struct {
	memoryProducts
	store     *memoryStore
	afterRead func()
}

func (s *memoryStore) live(afterRead func()) *liveProducts {
	return &liveProducts{store: s, afterRead: afterRead}
}

func (r *liveProducts) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.Lock()
	p, ok := r.store.products[id]
	r.store.mu.Unlock()
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	if r.afterRead != nil {
		r.afterRead()
	}

	return &p, nil
}

func (r *liveProducts) Update(_ context.Context, p *entity.Product, patch *entity.ProductPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.products[p.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	r.store.products[p.ID] = applyPatchedColumns(stored, p, patch)

	return nil
}

type memoryOrders struct{ tx *memoryTx }

func (r memoryOrders) Create(_ context.Context, o *entity.Order) error {
	r.tx.orders = append(r.tx.orders, o)

	return nil
}

func (r memoryOrders) FindByID(context.Context, uuid.UUID) (*entity.Order, error) {
	return nil, repository.ErrOrderNotFound
}

func (r memoryOrders) ListByCustomer(context.Context, uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}

func (r memoryOrders) ListBySeller(context.Context, uuid.UUID) ([]*entity.Order, error) {
	return nil, nil
}

func TestOrderService_PlaceOrder_ConcurrentBuyersNeverOversell(t *testing.T) {
	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		Name:          "Kantha quilt",
		Price:         decimal.NewFromInt(80),
		StockQuantity: 5,
		IsAvailable:   true,
	}
	store := newMemoryStore(product)

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().OrderPlaced().Return().Once()
	metrics.EXPECT().OrderRejected("INSUFFICIENT_STOCK").Return().Once()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewOrderService(OrderServiceParams{
		TxManager: store,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		results = make([]error, 2)
	)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = svc.PlaceOrder(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.PlaceOrderInput{
				ProductID:       product.ID,
				Quantity:        intPtr(3),
				ShippingAddress: "7 Warp Lane",
			})
		}(i)
	}
	close(start)
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)

	final := store.product(product.ID)
	assert.Equal(t, 2, final.StockQuantity)
	assert.True(t, final.IsAvailable)
	require.Len(t, store.orders, 1)
	assert.Equal(t, "240", store.orders[0].TotalPrice.String())
}

func TestOrderService_PlaceOrder_SellsOutExactly(t *testing.T) {
	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		Name:          "Phulkari dupatta",
		Price:         decimal.NewFromInt(25),
		StockQuantity: 4,
		IsAvailable:   true,
	}
	store := newMemoryStore(product)

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().OrderPlaced().Return().Times(4)
	metrics.EXPECT().OrderRejected("PRODUCT_NOT_FOUND").Return().Times(4)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Times(4)

	svc := NewOrderService(OrderServiceParams{
		TxManager: store,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.PlaceOrder(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.PlaceOrderInput{
				ProductID:       product.ID,
				ShippingAddress: "7 Warp Lane",
			})
		}()
	}
	wg.Wait()

	final := store.product(product.ID)
	assert.Equal(t, 0, final.StockQuantity)
	assert.False(t, final.IsAvailable)
	assert.Len(t, store.orders, 4)
}

func TestProductService_UpdateProduct_RenameKeepsCommittedSale(t *testing.T) {
	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		Name:          "Kantha quilt",
		Price:         decimal.NewFromInt(80),
		StockQuantity: 5,
		IsAvailable:   true,
	}
	seller := &entity.Principal{UserID: product.SellerID, Username: "meera", Role: entity.RoleWeaver}
	store := newMemoryStore(product)

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().OrderPlaced().Return().Once()
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Once()

	orders := NewOrderService(OrderServiceParams{
		TxManager: store,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	// A buyer commits between the seller's read and write.
	var sold bool
	live := store.live(func() {
		if sold {
			return
		}
		sold = true
		_, err := orders.PlaceOrder(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.PlaceOrderInput{
			ProductID:       product.ID,
			Quantity:        intPtr(3),
			ShippingAddress: "7 Warp Lane",
		})
		require.NoError(t, err)
	})

	products := NewProductService(ProductServiceParams{
		TxManager:   store,
		ProductRepo: live,
		Logger:      newDiscardLogger(),
	})

	updated, err := products.UpdateProduct(context.Background(), seller, product.ID, &entity.ProductPatch{
		Name: stringPtr("Kantha quilt, madder red"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kantha quilt, madder red", updated.Name)

	final := store.product(product.ID)
	assert.Equal(t, "Kantha quilt, madder red", final.Name)
	assert.Equal(t, 2, final.StockQuantity)
	assert.True(t, final.IsAvailable)
	require.Len(t, store.orders, 1)
}

func TestProductService_UpdateProduct_RestockSerializesWithBuyers(t *testing.T) {
	product := &entity.Product{
		ID:            uuid.New(),
		SellerID:      uuid.New(),
		Name:          "Chanderi scarf",
		Price:         decimal.NewFromInt(40),
		StockQuantity: 4,
		IsAvailable:   true,
	}
	seller := &entity.Principal{UserID: product.SellerID, Username: "meera", Role: entity.RoleWeaver}
	store := newMemoryStore(product)

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().OrderPlaced().Return().Times(4)
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.Anything).Return(nil).Times(4)

	orders := NewOrderService(OrderServiceParams{
		TxManager: store,
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})
	products := NewProductService(ProductServiceParams{
		TxManager:   store,
		ProductRepo: store.live(nil),
		Logger:      newDiscardLogger(),
	})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			_, err := orders.PlaceOrder(context.Background(), newPrincipal(entity.RoleCustomer), &usecase.PlaceOrderInput{
				ProductID:       product.ID,
				ShippingAddress: "7 Warp Lane",
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			<-start
			_, err := products.UpdateProduct(context.Background(), seller, product.ID, &entity.ProductPatch{
				Description: stringPtr("Handwoven in Chanderi"),
			})
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	_, err := products.UpdateProduct(context.Background(), seller, product.ID, &entity.ProductPatch{StockQuantity: intPtr(2)})
	require.NoError(t, err)

	final := store.product(product.ID)
	assert.Equal(t, 2, final.StockQuantity)
	assert.True(t, final.IsAvailable)
	assert.Equal(t, "Handwoven in Chanderi", final.Description)
	assert.Len(t, store.orders, 4)
}
