package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parkfinder/internal/models"
)

// upsertBatchSize is how many records go into one round trip during import.
const upsertBatchSize = 500

// ParkStore is the Postgres-backed curated park registry. The search path
// only reads from it; writes happen through the import commands.
type ParkStore struct {
	pool *pgxpool.Pool
}

// NewParkStore connects to Postgres using the DATABASE_URL environment
// variable.
func NewParkStore(ctx context.Context) (*ParkStore, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("missing required environment variable: DATABASE_URL")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Postgres pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}

	log.Println("Successfully connected to Postgres")
	return &ParkStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *ParkStore) Close() {
	s.pool.Close()
}

// EnsureSchema creates the urban_parks table if it does not exist yet, so a
// first import against a fresh database works without a manual step.
func (s *ParkStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS urban_parks (
			id                     text PRIMARY KEY,
			name                   text NOT NULL,
			park_type              text NOT NULL,
			road_address           text,
			jibun_address          text,
			lat                    double precision,
			lng                    double precision,
			area                   double precision,
			sports_facilities      text,
			play_facilities        text,
			convenience_facilities text,
			culture_facilities     text,
			other_facilities       text,
			has_playground         boolean NOT NULL DEFAULT false,
			has_gym                boolean NOT NULL DEFAULT false,
			has_toilet             boolean NOT NULL DEFAULT false,
			has_parking            boolean NOT NULL DEFAULT false,
			has_bench              boolean NOT NULL DEFAULT false,
			has_stage_or_culture   boolean NOT NULL DEFAULT false,
			established_at         text,
			org_name               text,
			phone                  text,
			data_date              text,
			provider_code          text,
			provider_name          text
		);
		CREATE INDEX IF NOT EXISTS idx_urban_parks_lat_lng ON urban_parks (lat, lng);
		CREATE INDEX IF NOT EXISTS idx_urban_parks_park_type ON urban_parks (park_type);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure urban_parks schema: %v", err)
	}
	return nil
}

const upsertSQL = `
	INSERT INTO urban_parks (
		id, name, park_type, road_address, jibun_address, lat, lng, area,
		sports_facilities, play_facilities, convenience_facilities,
		culture_facilities, other_facilities,
		has_playground, has_gym, has_toilet, has_parking, has_bench, has_stage_or_culture,
		established_at, org_name, phone, data_date, provider_code, provider_name
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13,
		$14, $15, $16, $17, $18, $19,
		$20, $21, $22, $23, $24, $25
	)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		park_type = EXCLUDED.park_type,
		road_address = EXCLUDED.road_address,
		jibun_address = EXCLUDED.jibun_address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		area = EXCLUDED.area,
		sports_facilities = EXCLUDED.sports_facilities,
		play_facilities = EXCLUDED.play_facilities,
		convenience_facilities = EXCLUDED.convenience_facilities,
		culture_facilities = EXCLUDED.culture_facilities,
		other_facilities = EXCLUDED.other_facilities,
		has_playground = EXCLUDED.has_playground,
		has_gym = EXCLUDED.has_gym,
		has_toilet = EXCLUDED.has_toilet,
		has_parking = EXCLUDED.has_parking,
		has_bench = EXCLUDED.has_bench,
		has_stage_or_culture = EXCLUDED.has_stage_or_culture,
		established_at = EXCLUDED.established_at,
		org_name = EXCLUDED.org_name,
		phone = EXCLUDED.phone,
		data_date = EXCLUDED.data_date,
		provider_code = EXCLUDED.provider_code,
		provider_name = EXCLUDED.provider_name`

// UpsertBatch writes converted records in batches. Records without an ID are
// skipped and logged; an import never mutates rows it does not name.
func (s *ParkStore) UpsertBatch(ctx context.Context, parks []models.UrbanPark) (int, error) {
	stored := 0
	for start := 0; start < len(parks); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(parks) {
			end = len(parks)
		}

		batch := &pgx.Batch{}
		queued := 0
		for _, park := range parks[start:end] {
			if park.ID == "" {
				log.Printf("Skipping record without a management number: %q", park.Name)
				continue
			}
			batch.Queue(upsertSQL,
				park.ID, park.Name, park.ParkType, park.RoadAddress, park.JibunAddress,
				park.Lat, park.Lng, park.Area,
				park.SportsFacilities, park.PlayFacilities, park.ConvenienceFacilities,
				park.CultureFacilities, park.OtherFacilities,
				park.Flags.HasPlayground, park.Flags.HasGym, park.Flags.HasToilet,
				park.Flags.HasParking, park.Flags.HasBench, park.Flags.HasStageOrCulture,
				park.EstablishedAt, park.OrgName, park.Phone, park.DataDate,
				park.ProviderCode, park.ProviderName,
			)
			queued++
		}

		if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
			return stored, fmt.Errorf("failed to upsert batch starting at %d: %v", start, err)
		}
		stored += queued
		log.Printf("Upserted batch %d-%d (%d records)", start, end, queued)
	}
	return stored, nil
}

const selectColumns = `
	id, name, park_type, road_address, jibun_address, lat, lng, area,
	sports_facilities, play_facilities, convenience_facilities,
	culture_facilities, other_facilities,
	has_playground, has_gym, has_toilet, has_parking, has_bench, has_stage_or_culture,
	established_at, org_name, phone, data_date, provider_code, provider_name`

// AllWithCoordinates returns every record that can take part in spatial
// matching. Distance filtering happens in the caller; the registry is small
// enough that the matcher wants the full candidate set anyway.
func (s *ParkStore) AllWithCoordinates(ctx context.Context) ([]models.UrbanPark, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM urban_parks WHERE lat IS NOT NULL AND lng IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("failed to query urban_parks: %v", err)
	}
	defer rows.Close()

	var parks []models.UrbanPark
	for rows.Next() {
		park, err := scanPark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan urban_parks row: %v", err)
		}
		parks = append(parks, park)
	}
	return parks, rows.Err()
}

// GetByID returns one record by registry ID, or nil when it does not exist.
func (s *ParkStore) GetByID(ctx context.Context, id string) (*models.UrbanPark, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM urban_parks WHERE id = $1`, id)
	park, err := scanPark(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load urban park %q: %v", id, err)
	}
	return &park, nil
}

func scanPark(row pgx.Row) (models.UrbanPark, error) {
	var park models.UrbanPark
	err := row.Scan(
		&park.ID, &park.Name, &park.ParkType, &park.RoadAddress, &park.JibunAddress,
		&park.Lat, &park.Lng, &park.Area,
		&park.SportsFacilities, &park.PlayFacilities, &park.ConvenienceFacilities,
		&park.CultureFacilities, &park.OtherFacilities,
		&park.Flags.HasPlayground, &park.Flags.HasGym, &park.Flags.HasToilet,
		&park.Flags.HasParking, &park.Flags.HasBench, &park.Flags.HasStageOrCulture,
		&park.EstablishedAt, &park.OrgName, &park.Phone, &park.DataDate,
		&park.ProviderCode, &park.ProviderName,
	)
	return park, err
}
