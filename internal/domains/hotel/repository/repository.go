package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"sync"

	"innkeeper/infras/otel"
	"innkeeper/internal/domains/hotel/model"
	"innkeeper/shared/constant"
	"innkeeper/shared/failure"
)

// Directory is the name-keyed hotel registry. State lives in process memory
// only; the service keeps nothing across restarts.
type Directory interface {
	Insert(ctx context.Context, hotel *model.Hotel) error
	Get(ctx context.Context, name string) (*model.Hotel, error)
	GetAll(ctx context.Context) []*model.Hotel
	Delete(ctx context.Context, name string) error
	Exist(ctx context.Context, name string) bool
}

type directoryImpl struct {
	mu     sync.RWMutex
	hotels map[string]*model.Hotel
	order  []string
	otel   otel.Otel
}

func New(ot otel.Otel) Directory {
	return &directoryImpl{
		hotels: make(map[string]*model.Hotel),
		otel:   ot,
	}
}

func (d *directoryImpl) Insert(ctx context.Context, hotel *model.Hotel) (err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.hotels[hotel.Name]; ok {
		return failure.Conflict("hotel name must be unique") //nolint:wrapcheck
	}

	d.hotels[hotel.Name] = hotel
	d.order = append(d.order, hotel.Name)

	return nil
}

func (d *directoryImpl) Get(ctx context.Context, name string) (hotel *model.Hotel, err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	d.mu.RLock()
	defer d.mu.RUnlock()

	hotel, ok := d.hotels[name]
	if !ok {
		return nil, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	return hotel, nil
}

func (d *directoryImpl) GetAll(ctx context.Context) []*model.Hotel {
	_, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	d.mu.RLock()
	defer d.mu.RUnlock()

	hotels := make([]*model.Hotel, 0, len(d.order))
	for _, name := range d.order {
		hotels = append(hotels, d.hotels[name])
	}

	return hotels
}

func (d *directoryImpl) Delete(ctx context.Context, name string) (err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.hotels[name]; !ok {
		return failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	delete(d.hotels, name)
	for i, existing := range d.order {
		if existing == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	return nil
}

func (d *directoryImpl) Exist(ctx context.Context, name string) bool {
	_, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Exist")
	defer scope.End()

	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.hotels[name]

	return ok
}
