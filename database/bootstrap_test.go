package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

func TestOpenSQLite_FreshDatabase(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)

	for _, tbl := range []string{"fields", "crops", "crop_selections", "rotations", "rotation_entries"} {
		assert.True(t, db.Migrator().HasTable(tbl), tbl)
	}
	var idx string
	require.NoError(t, db.Raw(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_rotation_cell'`).Scan(&idx).Error)
	assert.Equal(t, "idx_rotation_cell", idx)
}

func TestOpenSQLite_ReopenKeepsRowsAndCellIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	cell := entities.RotationEntry{RotationID: 1, Year: 1, Division: 1, CropName: "Wheat"}
	require.NoError(t, db.Create(&cell).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	var n int64
	require.NoError(t, db.Model(&entities.RotationEntry{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	dup := entities.RotationEntry{RotationID: 1, Year: 1, Division: 1, CropName: "Corn"}
	assert.Error(t, db.Create(&dup).Error)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))

	err := Wrap(gorm.ErrRecordNotFound, "rotation 3")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "rotation 3: not found", err.Error())

	err = Wrap(context.DeadlineExceeded, "list")
	assert.ErrorIs(t, err, apperr.ErrTimeout)

	driver := errors.New("disk I/O error")
	err = Wrap(driver, "create rotation")
	assert.ErrorIs(t, err, apperr.ErrDependencyFailure)
	assert.ErrorIs(t, err, driver)

	own := fmt.Errorf("%w: not yours", apperr.ErrUnauthorized)
	assert.Same(t, own, Wrap(own, "update"))
}
