package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"service-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// fixtureOrderRepository serves a static in-memory data set. Wiring selects it
// instead of the live pgx repository when USE_FIXTURE_DATA is set, so demo
// deployments work without a database.
type fixtureOrderRepository struct {
	mu        sync.Mutex
	nextID    int64
	orders    map[int64]*entity.ServiceOrder
	customers map[int64]entity.Customer
	packages  map[int64]entity.Package
	hostels   map[int64]entity.Hostel
	users     map[uuid.UUID]entity.UserSnapshot
	log       *zap.Logger
}

func NewFixtureOrderRepository(log *zap.Logger) OrderRepository {
	r := &fixtureOrderRepository{
		nextID:    1,
		orders:    make(map[int64]*entity.ServiceOrder),
		customers: make(map[int64]entity.Customer),
		packages:  make(map[int64]entity.Package),
		hostels:   make(map[int64]entity.Hostel),
		users:     make(map[uuid.UUID]entity.UserSnapshot),
		log:       log.With(zap.String("repository", "order_fixture")),
	}
	r.seed()
	return r
}

func (r *fixtureOrderRepository) seed() {
	adminID := uuid.MustParse("6fa1f9a3-0f0e-4d80-b2a6-8a5a0a2eb001")
	mechanicID := uuid.MustParse("6fa1f9a3-0f0e-4d80-b2a6-8a5a0a2eb002")

	admin := entity.ServiceUser{ID: adminID, Email: "admin@faisal-service.app", Type: entity.UserTypeAdmin, IsApproved: true}
	mechanic := entity.ServiceUser{ID: mechanicID, Email: "mechanic@faisal-service.app", Type: entity.UserTypeMechanic, IsApproved: true}
	r.users[adminID] = admin.Snapshot()
	r.users[mechanicID] = mechanic.Snapshot()

	r.customers[1] = entity.Customer{ID: 1, Name: "Ahmad Fauzi", Email: "ahmad@example.com", Phone: "0123456789", NumberPlate: "WXY 1234", BrandModel: "Honda Civic"}
	r.customers[2] = entity.Customer{ID: 2, Name: "Siti Aminah", Email: "siti@example.com", Phone: "0198765432", NumberPlate: "ABC 987", BrandModel: "Perodua Myvi"}

	r.packages[1] = entity.Package{ID: 1, Name: "Daily Use Package", Code: entity.PackageCodeDaily, Price: decimal.NewFromInt(80), Description: "Routine service for daily drivers"}
	r.packages[2] = entity.Package{ID: 2, Name: "Performance Package", Code: entity.PackageCodePerformance, Price: decimal.NewFromInt(250), Description: "Full performance tune and inspection"}

	r.hostels[1] = entity.Hostel{ID: 1, Name: "Hostel A"}
	r.hostels[2] = entity.Hostel{ID: 2, Name: "Hostel B"}

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	seedOrders := []*entity.ServiceOrder{
		{CustomerID: 1, HostelID: 1, PackageID: 1, UserID: mechanicID, TimeSlot: "2024-03-04T10:00", WorkStatus: entity.WorkStatusWaiting, PaymentStatus: entity.PaymentStatusPending},
		{CustomerID: 2, HostelID: 2, PackageID: 2, UserID: mechanicID, TimeSlot: "2024-03-05T14:00", WorkStatus: entity.WorkStatusInProgress, PaymentStatus: entity.PaymentStatusApproved},
		{CustomerID: 1, HostelID: 1, PackageID: 2, UserID: adminID, TimeSlot: "2024-03-06T11:00", WorkStatus: entity.WorkStatusCompleted, PaymentStatus: entity.PaymentStatusApproved},
	}
	for i, o := range seedOrders {
		o.ID = r.nextID
		o.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		o.UpdatedAt = o.CreatedAt
		r.orders[o.ID] = o
		r.nextID++
	}
}

func (r *fixtureOrderRepository) extend(o *entity.ServiceOrder) *entity.ServiceOrderExtended {
	return &entity.ServiceOrderExtended{
		ServiceOrder: *o,
		Customer:     r.customers[o.CustomerID],
		Package:      r.packages[o.PackageID],
		Hostel:       r.hostels[o.HostelID],
		AssignedUser: r.users[o.UserID],
	}
}

func (r *fixtureOrderRepository) Create(_ context.Context, order *entity.ServiceOrder) (*entity.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *order
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.orders[created.ID] = &created
	r.nextID++

	stored := created
	return &stored, nil
}

func (r *fixtureOrderRepository) FindAllExtended(_ context.Context) ([]*entity.ServiceOrderExtended, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ServiceOrderExtended
	for _, o := range r.orders {
		out = append(out, r.extend(o))
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fixtureOrderRepository) FindExtendedByID(_ context.Context, id int64) (*entity.ServiceOrderExtended, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return r.extend(o), nil
}

func (r *fixtureOrderRepository) FindExtendedByPaymentStatus(_ context.Context, status entity.PaymentStatus) ([]*entity.ServiceOrderExtended, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ServiceOrderExtended
	for _, o := range r.orders {
		if o.PaymentStatus == status {
			out = append(out, r.extend(o))
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fixtureOrderRepository) FindExtendedByWorkStatus(_ context.Context, status entity.WorkStatus) ([]*entity.ServiceOrderExtended, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ServiceOrderExtended
	for _, o := range r.orders {
		if o.WorkStatus == status {
			out = append(out, r.extend(o))
		}
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (r *fixtureOrderRepository) UpdatePartial(_ context.Context, id int64, patch entity.ServiceOrderPatch) (*entity.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}

	if patch.WorkStatus != nil {
		o.WorkStatus = *patch.WorkStatus
	}
	if patch.PaymentStatus != nil {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.TimeSlot != nil {
		o.TimeSlot = *patch.TimeSlot
	}
	o.UpdatedAt = time.Now()

	updated := *o
	return &updated, nil
}

func (r *fixtureOrderRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

func sortByCreatedDesc(orders []*entity.ServiceOrderExtended) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
