package data_test

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
	"testing"
	"time"
)

type Team struct {
	ID   uint
	Name string
}

type Player struct {
	ID     uint
	Name   string
	Active bool
	TeamID uint
	Team   *Team `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func getGormDB(t *testing.T) *gorm.DB {
	logConfig := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: 100 * time.Millisecond,
		LogLevel:      logger.Warn,
		Colorful:      true,
	})
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logConfig,
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestGormRepository(t *testing.T) {
	db := getGormDB(t)
	require.NoError(t, db.AutoMigrate(&Team{}, &Player{}))

	transactionManager := data.NewGormTransactionManager(db)
	teamRepository := data.NewGormRepository[Team, uint](transactionManager)
	playerRepository := data.NewGormRepository[Player, uint](transactionManager)

	ctx := context.Background()
	blue, err := teamRepository.Create(ctx, Team{Name: "blue"})
	require.NoError(t, err)
	red, err := teamRepository.Create(ctx, Team{Name: "red"})
	require.NoError(t, err)

	t.Run("create & find", func(t *testing.T) {
		created, err := playerRepository.Create(ctx, Player{Name: "reuben", Active: true, TeamID: blue.ID})
		assert.Nil(t, err)
		assert.NotEmpty(t, created.ID)

		found, err := playerRepository.FindOne(ctx, created.ID)
		assert.Nil(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "reuben", found.Name)
		assert.True(t, found.Active)
		assert.Equal(t, blue.ID, found.TeamID)
		assert.Nil(t, found.Team)
	})

	t.Run("create does not save associations", func(t *testing.T) {
		created, err := playerRepository.Create(ctx, Player{
			Name:   "baek",
			TeamID: blue.ID,
			Team:   &Team{ID: blue.ID, Name: "renamed"},
		})
		require.NoError(t, err)

		team, err := teamRepository.FindOne(ctx, blue.ID)
		assert.Nil(t, err)
		assert.Equal(t, "blue", team.Name)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("find not found", func(t *testing.T) {
		_, err := playerRepository.FindOne(ctx, 12345)
		assert.ErrorIs(t, err, data.NotFoundError)
	})

	t.Run("create with dangling foreign key", func(t *testing.T) {
		_, err := playerRepository.Create(ctx, Player{Name: "ghost", TeamID: 999})
		assert.ErrorIs(t, err, data.ForeignKeyViolatedError)
	})

	t.Run("create with duplicated key", func(t *testing.T) {
		_, err := teamRepository.Create(ctx, Team{ID: blue.ID, Name: "blue again"})
		assert.ErrorIs(t, err, data.DuplicatedKeyError)
	})

	t.Run("update writes zero values", func(t *testing.T) {
		created, err := playerRepository.Create(ctx, Player{Name: "runner", Active: true, TeamID: blue.ID})
		require.NoError(t, err)

		created.Active = false
		created.TeamID = red.ID
		updated, err := playerRepository.Update(ctx, created)
		assert.Nil(t, err)
		assert.Equal(t, created.ID, updated.ID)

		found, err := playerRepository.FindOne(ctx, created.ID)
		assert.Nil(t, err)
		assert.False(t, found.Active)
		assert.Equal(t, red.ID, found.TeamID)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := playerRepository.Update(ctx, Player{ID: 12345, Name: "nobody", TeamID: blue.ID})
		assert.ErrorIs(t, err, data.NotFoundError)

		_, err = playerRepository.Update(ctx, Player{Name: "no id"})
		assert.ErrorIs(t, err, data.MissingIDError)
	})

	t.Run("delete", func(t *testing.T) {
		created, err := playerRepository.Create(ctx, Player{Name: "leaver", TeamID: red.ID})
		require.NoError(t, err)

		err = playerRepository.Delete(ctx, created)
		assert.Nil(t, err)

		_, err = playerRepository.FindOne(ctx, created.ID)
		assert.ErrorIs(t, err, data.NotFoundError)

		err = playerRepository.Delete(ctx, created)
		assert.ErrorIs(t, err, data.NotFoundError)

		err = playerRepository.Delete(ctx, Player{})
		assert.ErrorIs(t, err, data.MissingIDError)
	})

	t.Run("delete referenced owner", func(t *testing.T) {
		err := teamRepository.Delete(ctx, blue)
		assert.ErrorIs(t, err, data.ForeignKeyViolatedError)

		found, err := teamRepository.FindOne(ctx, blue.ID)
		assert.Nil(t, err)
		assert.Equal(t, blue, found)
	})
}

func TestGormFindByRepository(t *testing.T) {
	db := getGormDB(t)
	require.NoError(t, db.AutoMigrate(&Team{}, &Player{}))

	transactionManager := data.NewGormTransactionManager(db)
	teamRepository := data.NewGormRepository[Team, uint](transactionManager)
	playerRepository := data.NewGormRepository[Player, uint](transactionManager)
	playerByTeamRepository := data.NewGormFindByRepository[Player, Team, uint](playerRepository)

	ctx := context.Background()
	blue, _ := teamRepository.Create(ctx, Team{Name: "blue"})
	red, _ := teamRepository.Create(ctx, Team{Name: "red"})
	empty, _ := teamRepository.Create(ctx, Team{Name: "empty"})

	first, _ := playerRepository.Create(ctx, Player{Name: "first", TeamID: blue.ID})
	second, _ := playerRepository.Create(ctx, Player{Name: "second", TeamID: blue.ID})
	_, _ = playerRepository.Create(ctx, Player{Name: "third", TeamID: red.ID})

	t.Run("find-by-team", func(t *testing.T) {
		players, err := playerByTeamRepository.FindBy(ctx, "Team", blue)
		assert.Nil(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, first.ID, players[0].ID)
		assert.Equal(t, second.ID, players[1].ID)
	})

	t.Run("find-by-team without players", func(t *testing.T) {
		players, err := playerByTeamRepository.FindBy(ctx, "Team", empty)
		assert.Nil(t, err)
		assert.Empty(t, players)
	})

	t.Run("find-by-team without id", func(t *testing.T) {
		_, err := playerByTeamRepository.FindBy(ctx, "Team", Team{Name: "unsaved"})
		assert.ErrorIs(t, err, data.MissingIDError)
	})

	t.Run("find-by unknown association", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = playerByTeamRepository.FindBy(ctx, "Coach", blue)
		})
	})
}
