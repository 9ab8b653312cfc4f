package crud

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Input constraint untuk request create/update: setiap input CMS wajib
// bisa memvalidasi dirinya sebelum menyentuh database.
type Input interface {
	Validate() error
}

// DB subset dari pgxpool.Pool yang dipakai service.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Service menjalankan operasi CRUD untuk satu entity E dengan input C.
// Mapping row ke struct memakai db tag (pgx.RowToStructByName), jadi
// Columns di Definition harus cocok dengan tag di struct entity.
type Service[E any, C Input] struct {
	db  DB
	def Definition[C]
}

func NewService[E any, C Input](db DB, def Definition[C]) *Service[E, C] {
	return &Service[E, C]{db: db, def: def}
}

// Create memvalidasi input lalu insert satu row, mengembalikan record
// lengkap hasil RETURNING. Insert tanpa row balik dilaporkan ErrInternal.
func (s *Service[E, C]) Create(ctx context.Context, in C) (E, error) {
	var zero E
	if err := in.Validate(); err != nil {
		return zero, err
	}

	rows, err := s.db.Query(ctx, s.def.InsertQuery(), s.def.Args(in)...)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", s.def.Table, err)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrInternal
		}
		return zero, fmt.Errorf("insert %s: %w", s.def.Table, err)
	}
	return rec, nil
}

// ListAll mengembalikan seluruh row sesuai ordering key entity.
// Hasil kosong tetap slice kosong, bukan nil.
func (s *Service[E, C]) ListAll(ctx context.Context) ([]E, error) {
	return s.list(ctx, false)
}

// ListPublic sama dengan ListAll tapi memakai PublicFilter bila ada
// (blog: hanya row published).
func (s *Service[E, C]) ListPublic(ctx context.Context) ([]E, error) {
	return s.list(ctx, true)
}

func (s *Service[E, C]) list(ctx context.Context, publicOnly bool) ([]E, error) {
	rows, err := s.db.Query(ctx, s.def.ListQuery(publicOnly))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.def.Table, err)
	}

	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.def.Table, err)
	}
	if recs == nil {
		recs = []E{}
	}
	return recs, nil
}

// GetByKey mengambil satu row lewat KeyColumn (blog: slug). Row yang
// tidak lolos PublicFilter dianggap tidak ada.
func (s *Service[E, C]) GetByKey(ctx context.Context, key string) (E, error) {
	var zero E
	rows, err := s.db.Query(ctx, s.def.GetByKeyQuery(), key)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", s.def.Table, err)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s: %w", s.def.Table, err)
	}
	return rec, nil
}

// Update mengganti seluruh field mutable dari row dengan id tersebut.
// Nol row yang kena berarti ErrNotFound, bukan silent no-op.
func (s *Service[E, C]) Update(ctx context.Context, id int, in C) (E, error) {
	var zero E
	if err := in.Validate(); err != nil {
		return zero, err
	}

	args := append(s.def.Args(in), id)
	rows, err := s.db.Query(ctx, s.def.UpdateQuery(), args...)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", s.def.Table, err)
	}

	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("update %s: %w", s.def.Table, err)
	}
	return rec, nil
}

// Delete menghapus row dengan id tersebut. Affected rows sengaja tidak
// dicek: delete pada id yang sudah tidak ada tetap sukses.
func (s *Service[E, C]) Delete(ctx context.Context, id int) error {
	if _, err := s.db.Exec(ctx, s.def.DeleteQuery(), id); err != nil {
		return fmt.Errorf("delete %s: %w", s.def.Table, err)
	}
	return nil
}
