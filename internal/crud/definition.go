package crud

import (
	"fmt"
	"strings"
)

// Definition mendeskripsikan satu entity CMS: tabelnya, kolomnya, dan
// aturan ordering/visibility-nya. Lima entity CMS memakai service dan
// handler yang sama, hanya Definition-nya yang berbeda.
type Definition[C any] struct {
	// Table nama tabel di PostgreSQL.
	Table string

	// Columns daftar kolom (snake_case) untuk SELECT dan RETURNING.
	// Urutannya harus mencakup seluruh field struct entity.
	Columns []string

	// InsertCols kolom yang nilainya dikirim client. Urutannya sama
	// dengan slice yang dikembalikan Args.
	InsertCols []string

	// Args mengubah input create/update jadi argumen query, satu nilai
	// per entri InsertCols.
	Args func(C) []any

	// OrderBy klausa ordering untuk listing, mis. "created_at DESC".
	OrderBy string

	// PublicFilter klausa WHERE tambahan untuk listing publik.
	// Kosong berarti listing publik identik dengan listing admin.
	PublicFilter string

	// KeyColumn kolom lookup tunggal selain id (blog: slug).
	KeyColumn string

	// TouchUpdated ikut men-set updated_at = NOW() pada insert dan update.
	TouchUpdated bool
}

func (d Definition[C]) selectList() string { return strings.Join(d.Columns, ", ") }

// InsertQuery membangun statement INSERT ... RETURNING untuk Create.
func (d Definition[C]) InsertQuery() string {
	cols := make([]string, len(d.InsertCols))
	copy(cols, d.InsertCols)

	values := make([]string, len(d.InsertCols))
	for i := range d.InsertCols {
		values[i] = fmt.Sprintf("$%d", i+1)
	}

	if d.TouchUpdated {
		cols = append(cols, "updated_at")
		values = append(values, "NOW()")
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		d.Table, strings.Join(cols, ", "), strings.Join(values, ", "), d.selectList(),
	)
}

// ListQuery membangun statement SELECT untuk listing. publicOnly
// menambahkan PublicFilter bila entity punya visibility gate.
func (d Definition[C]) ListQuery(publicOnly bool) string {
	q := fmt.Sprintf("SELECT %s FROM %s", d.selectList(), d.Table)
	if publicOnly && d.PublicFilter != "" {
		q += " WHERE " + d.PublicFilter
	}
	if d.OrderBy != "" {
		q += " ORDER BY " + d.OrderBy
	}
	return q
}

// GetByKeyQuery membangun lookup by KeyColumn. PublicFilter selalu ikut:
// row yang belum published tidak terlihat lewat lookup ini.
func (d Definition[C]) GetByKeyQuery() string {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", d.selectList(), d.Table, d.KeyColumn)
	if d.PublicFilter != "" {
		q += " AND " + d.PublicFilter
	}
	return q
}

// UpdateQuery membangun full-record UPDATE ... RETURNING keyed by id.
// RETURNING dipakai untuk membedakan "nol row" dari update yang sukses.
func (d Definition[C]) UpdateQuery() string {
	sets := make([]string, 0, len(d.InsertCols)+1)
	for i, col := range d.InsertCols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	if d.TouchUpdated {
		sets = append(sets, "updated_at = NOW()")
	}
	return fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		d.Table, strings.Join(sets, ", "), len(d.InsertCols)+1, d.selectList(),
	)
}

// DeleteQuery membangun DELETE by id. Tanpa RETURNING: delete sengaja
// idempotent, id yang tidak ada bukan error.
func (d Definition[C]) DeleteQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", d.Table)
}
