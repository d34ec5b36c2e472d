package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/pelada/go/internal/dbconfig"
	"golang.org/x/crypto/bcrypt"
)

// Demo mirrors go/internal/assets/demo_pelada.json
type Demo struct {
	Manager struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"manager"`
	Pelada struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		City     string `json:"city"`
		Timezone string `json:"timezone"`
	} `json:"pelada"`
	Season struct {
		ID         string `json:"id"`
		StartMonth string `json:"start_month"`
		EndMonth   string `json:"end_month"`
	} `json:"season"`
	Teams []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Color   string `json:"color"`
		Players []struct {
			ID       string `json:"id"`
			FullName string `json:"full_name"`
			Nickname string `json:"nickname"`
			Position string `json:"position"`
			Captain  bool   `json:"captain"`
		} `json:"players"`
	} `json:"teams"`
}

func main() {
	// 1) Load the JSON snapshot
	path := "go/internal/assets/demo_pelada.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var demo Demo
	if err := json.Unmarshal(data, &demo); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	ctx := context.Background()
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert everything in one transaction
	var inserted int64
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		n, err := seed(ctx, tx, demo)
		inserted = n
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	fmt.Printf("Demo seed complete: %d rows inserted (existing rows skipped)\n", inserted)
}

func seed(ctx context.Context, tx pgx.Tx, demo Demo) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demo.Manager.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var total int64
	exec := func(what, sql string, args ...any) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("insert %s: %w", what, err)
		}
		total += tag.RowsAffected()
		return nil
	}

	if err := exec("manager", `
        INSERT INTO users (id, username, email, password_hash)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT DO NOTHING`,
		demo.Manager.ID, demo.Manager.Username, demo.Manager.Email, string(hash),
	); err != nil {
		return total, err
	}

	if err := exec("pelada", `
        INSERT INTO peladas (id, manager_id, name, city, timezone)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO NOTHING`,
		demo.Pelada.ID, demo.Manager.ID, demo.Pelada.Name, demo.Pelada.City, demo.Pelada.Timezone,
	); err != nil {
		return total, err
	}

	if err := exec("season", `
        INSERT INTO seasons (id, pelada_id, start_month, end_month)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT DO NOTHING`,
		demo.Season.ID, demo.Pelada.ID, demo.Season.StartMonth, demo.Season.EndMonth,
	); err != nil {
		return total, err
	}

	for _, t := range demo.Teams {
		if err := exec("team "+t.Name, `
            INSERT INTO teams (id, season_id, name, color)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (id) DO NOTHING`,
			t.ID, demo.Season.ID, t.Name, t.Color,
		); err != nil {
			return total, err
		}

		for _, p := range t.Players {
			if err := exec("player "+p.FullName, `
                INSERT INTO players (id, pelada_id, full_name, nickname)
                VALUES ($1, $2, $3, NULLIF($4, ''))
                ON CONFLICT (id) DO NOTHING`,
				p.ID, demo.Pelada.ID, p.FullName, p.Nickname,
			); err != nil {
				return total, err
			}
			if err := exec("roster entry "+p.FullName, `
                INSERT INTO team_players (team_id, player_id, captain, position)
                VALUES ($1, $2, $3, NULLIF($4, ''))
                ON CONFLICT (team_id, player_id) DO NOTHING`,
				t.ID, p.ID, p.Captain, p.Position,
			); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
