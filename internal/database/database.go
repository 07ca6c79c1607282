package database

import (
	"database/sql"
	"os"
	"sync"

	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	table_name string
}

var (
	tableName  = "durak_games"
	dbInstance *Service
)

// New opens the sqlite store at DURAK_DB_PATH (default ./durak.db) and
// creates the games table if needed.
func New() Service {
	path := os.Getenv("DURAK_DB_PATH")
	if path == "" {
		path = "./durak.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic(err)
	}

	sqlStmt := `
	create table if not exists durak_games (
		id string not null primary key,
		created_at string,
		variant string,
		status string,
		winner integer,
		snapshot string
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		panic(err)
	}

	dbInstance = &Service{
		db:         db,
		table_name: tableName,
		m:          &sync.Mutex{},
	}

	return *dbInstance
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

func (s *Service) GetAll() ([]SavedGame, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + s.table_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SavedGame
	for rows.Next() {
		var result SavedGame
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.Variant,
			&result.Status,
			&result.Winner,
			&result.Snapshot); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) GetByID(id string) (SavedGame, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result SavedGame
	err := s.db.QueryRow("SELECT * FROM "+s.table_name+" WHERE id = ?", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Variant,
		&result.Status,
		&result.Winner,
		&result.Snapshot)
	if err != nil {
		return SavedGame{}, err
	}
	return result, nil
}

func (s *Service) Insert(result SavedGame) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.table_name+
		" (id, created_at, variant, status, winner, snapshot) VALUES (?, ?, ?, ?, ?, ?)",
		result.ID,
		result.CreatedAt,
		result.Variant,
		result.Status,
		result.Winner,
		result.Snapshot)

	if err != nil {
		return err
	}

	return nil
}

func (s *Service) GetByVariant(variant string) ([]SavedGame, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM "+s.table_name+" WHERE variant = ?", variant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SavedGame
	for rows.Next() {
		var result SavedGame
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.Variant,
			&result.Status,
			&result.Winner,
			&result.Snapshot); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}

	return results, nil
}
