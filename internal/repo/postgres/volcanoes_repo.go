package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geocoder89/volcanoes/internal/domain/volcano"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VolcanoesRepo reads the externally loaded "data" table.
type VolcanoesRepo struct {
	pool *pgxpool.Pool
	obs  Observer
}

// constructor function

func NewVolcanoesRepo(pool *pgxpool.Pool, obs Observer) *VolcanoesRepo {
	return &VolcanoesRepo{
		pool: pool,
		obs:  observerOrNoop(obs),
	}
}

func (r *VolcanoesRepo) Countries(ctx context.Context) ([]string, error) {
	output := make([]string, 0)

	err := r.obs.ObserveDB("volcanoes.countries", func() error {
		rows, err := r.pool.Query(ctx, `SELECT DISTINCT country FROM data ORDER BY country ASC`)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var c string

			if err := rows.Scan(&c); err != nil {
				return err
			}
			output = append(output, c)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return output, nil
}

func (r *VolcanoesRepo) List(ctx context.Context, filter volcano.ListFilter) ([]volcano.Summary, error) {
	baseQuery := `SELECT id, name, country, region, subregion FROM data`

	conds := []string{"country = $1"}
	args := []interface{}{filter.Country}

	// the column name comes from the closed Radius set, never from input
	if filter.PopulatedWithin != nil {
		conds = append(conds, fmt.Sprintf("%s > $%d", filter.PopulatedWithin.Column(), len(args)+1))
		args = append(args, 0)
	}

	query := baseQuery + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY id ASC"

	output := make([]volcano.Summary, 0)

	err := r.obs.ObserveDB("volcanoes.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var s volcano.Summary

			err = rows.Scan(&s.ID, &s.Name, &s.Country, &s.Region, &s.Subregion)

			if err != nil {
				return err
			}

			output = append(output, s)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

func (r *VolcanoesRepo) GetByID(ctx context.Context, id int64) (volcano.Volcano, error) {
	var v volcano.Volcano

	err := r.obs.ObserveDB("volcanoes.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT id, name, country, region, subregion,
				COALESCE(last_eruption, ''),
				COALESCE(summit, 0),
				COALESCE(elevation, 0),
				COALESCE(latitude::text, ''),
				COALESCE(longitude::text, ''),
				COALESCE(population_5km, 0),
				COALESCE(population_10km, 0),
				COALESCE(population_30km, 0),
				COALESCE(population_100km, 0)
			FROM data WHERE id = $1`, id,
		).Scan(
			&v.ID,
			&v.Name,
			&v.Country,
			&v.Region,
			&v.Subregion,
			&v.LastEruption,
			&v.Summit,
			&v.Elevation,
			&v.Latitude,
			&v.Longitude,
			&v.Population5km,
			&v.Population10km,
			&v.Population30km,
			&v.Population100km,
		)
	})

	if err != nil {
		// if there are no rows matching the id
		if errors.Is(err, pgx.ErrNoRows) {
			return volcano.Volcano{}, volcano.ErrNotFound
		}
		return volcano.Volcano{}, err
	}

	return v, nil
}
