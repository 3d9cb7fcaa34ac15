package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/synchome/apartment-system/internal/core/domain"
)

const collectionApartments = "apartments"

type ApartmentRepository struct {
	col *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) *ApartmentRepository {
	return &ApartmentRepository{col: db.Collection(collectionApartments)}
}

type apartmentDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	domain.Apartment `bson:",inline"`
}

func (d apartmentDoc) toDomain() domain.Apartment {
	a := d.Apartment
	a.ID = d.ID.Hex()
	return a
}

func (r *ApartmentRepository) FindAll(ctx context.Context) ([]domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apartments []domain.Apartment
	for cur.Next(ctx) {
		var d apartmentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		apartments = append(apartments, d.toDomain())
	}
	return apartments, cur.Err()
}

func (r *ApartmentRepository) FindByEmail(ctx context.Context, email string) (*domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d apartmentDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, err
	}

	a := d.toDomain()
	return &a, nil
}

func (r *ApartmentRepository) AddDevice(ctx context.Context, id string, device domain.Device) error {
	return r.updateByID(ctx, id, bson.M{"$push": bson.M{"devices": device}}, nil)
}

// RemoveDevice unsets the array slot, leaving a null, then pulls nulls out.
// Two single-document updates; there is no multi-op transaction here, a
// concurrent reader may briefly observe the null hole.
func (r *ApartmentRepository) RemoveDevice(ctx context.Context, id string, index int) error {
	field := fmt.Sprintf("devices.%d", index)
	if err := r.updateByID(ctx, id, bson.M{"$unset": bson.M{field: 1}}, nil); err != nil {
		return err
	}
	return r.updateByID(ctx, id, bson.M{"$pull": bson.M{"devices": nil}}, nil)
}

func (r *ApartmentRepository) SetDeviceStatus(ctx context.Context, id string, index int, on bool) error {
	field := fmt.Sprintf("devices.%d.status", index)
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{field: on}}, nil)
}

func (r *ApartmentRepository) SetComponentStatus(ctx context.Context, id, component string, on bool) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{component + ".status": on}}, nil)
}

func (r *ApartmentRepository) SetMembers(ctx context.Context, id string, members []domain.Member) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"members": members}}, nil)
}

func (r *ApartmentRepository) UpsertWifi(ctx context.Context, id string, setup domain.WifiSetup) error {
	update := bson.M{"$set": bson.M{
		"router": setup.Router,
		"wifi":   setup.Wifi,
	}}
	return r.updateByID(ctx, id, update, options.Update().SetUpsert(true))
}

func (r *ApartmentRepository) UpsertAC(ctx context.Context, id string, ac domain.AC) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"ac": ac}}, options.Update().SetUpsert(true))
}

func (r *ApartmentRepository) UpsertCCTV(ctx context.Context, id string, cctv domain.CCTV) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"cctv": cctv}}, options.Update().SetUpsert(true))
}

func (r *ApartmentRepository) SetACTemp(ctx context.Context, id string, temp int) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"ac.temp": temp}}, nil)
}

func (r *ApartmentRepository) SetACMode(ctx context.Context, id, mode string) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"ac.mode": mode}}, nil)
}

func (r *ApartmentRepository) SetEnergyTotals(ctx context.Context, id string, rows []domain.EnergyUsage) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"energy_usage": rows}}, options.Update().SetUpsert(true))
}

func (r *ApartmentRepository) SetWeeklyUsage(ctx context.Context, id string, rows []domain.DailyUsage) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"usageData": rows}}, options.Update().SetUpsert(true))
}

func (r *ApartmentRepository) updateByID(ctx context.Context, id string, update bson.M, opts *options.UpdateOptions) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res *mongo.UpdateResult
	if opts != nil {
		res, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
	} else {
		res, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return domain.ErrApartmentNotFound
	}
	return nil
}
