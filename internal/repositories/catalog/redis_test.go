package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	mockclock "github.com/muutmoku/ao-build-share/internal/pkg/clock/mock"
	"github.com/muutmoku/ao-build-share/internal/repositories/catalog"
	"github.com/muutmoku/ao-build-share/internal/testutils"
)

const testBody = `[{"uniqueName":"T4_HEAD_PLATE_SET1"}]`

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      catalog.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := catalog.NewRedis(nil)
	s.Error(err)

	_, err = catalog.NewRedis(&catalog.RedisConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	fetchedAt := s.now.Add(-time.Minute)
	out, err := s.repo.Put(s.ctx, catalog.PutInput{
		Document: &catalog.Document{
			Slot:      equipment.SlotHead,
			Body:      []byte(testBody),
			FetchedAt: fetchedAt,
		},
	})
	s.Require().NoError(err)
	s.Equal(s.now.Add(time.Hour), out.ExpiresAt)
	s.True(s.mr.Exists(catalog.GetKey(equipment.SlotHead)))
	s.Equal(time.Hour, s.mr.TTL(catalog.GetKey(equipment.SlotHead)))

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Slot: equipment.SlotHead})
	s.Require().NoError(err)
	s.Equal(equipment.SlotHead, got.Document.Slot)
	s.Equal(testBody, string(got.Document.Body))
	s.Equal(fetchedAt.Unix(), got.Document.FetchedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestPutStampsFetchedAt() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Document: &catalog.Document{Slot: equipment.SlotBag, Body: []byte(testBody)},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL(catalog.GetKey(equipment.SlotBag)))

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Slot: equipment.SlotBag})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), got.Document.FetchedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Document: &catalog.Document{Slot: equipment.SlotCape, Body: []byte(testBody)},
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Slot: equipment.SlotCape})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{Slot: equipment.SlotFood})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorrupted() {
	s.Require().NoError(s.mr.Set(catalog.GetKey(equipment.SlotMount), "not json"))

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Slot: equipment.SlotMount})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		input catalog.PutInput
	}{
		{name: "nil document", input: catalog.PutInput{}},
		{name: "unknown slot", input: catalog.PutInput{Document: &catalog.Document{Slot: "ring", Body: []byte(testBody)}}},
		{name: "empty body", input: catalog.PutInput{Document: &catalog.Document{Slot: equipment.SlotHead}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Slot: "ring"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{
		Document: &catalog.Document{Slot: equipment.SlotShoes, Body: []byte(testBody)},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Slot: equipment.SlotShoes})
	s.Require().NoError(err)
	s.False(s.mr.Exists(catalog.GetKey(equipment.SlotShoes)))

	_, err = s.repo.Delete(s.ctx, catalog.DeleteInput{Slot: equipment.SlotShoes})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
