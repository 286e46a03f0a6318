package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/typefight/typefighter-go/internal/dependencies/mocks"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	manager *Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.manager = NewManager(Dependencies{
		Clock:   mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		Random:  mocks.NewMockRandom(),
		Prompts: &fakePrompts{},
		Results: &fakeResults{},
	}, testutil.NopLogger())
}

func (s *ManagerSuite) TearDownTest() {
	s.manager.CloseAll()
}

func (s *ManagerSuite) TestGetOrCreateSpawnsRoom() {
	r, err := s.manager.GetOrCreate("ABC123")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ABC123"), r.Code())
	s.Equal(1, s.manager.RoomCount())
}

func (s *ManagerSuite) TestSameCodeRoutesToSameRoom() {
	r1, err := s.manager.GetOrCreate("ABC123")
	s.Require().NoError(err)
	r2, err := s.manager.GetOrCreate("ABC123")
	s.Require().NoError(err)

	s.Same(r1, r2)
	s.Equal(1, s.manager.RoomCount())
}

func (s *ManagerSuite) TestCodeNormalizedBeforeRouting() {
	r1, err := s.manager.GetOrCreate("abc123")
	s.Require().NoError(err)
	r2, err := s.manager.GetOrCreate("  ABC123 ")
	s.Require().NoError(err)

	s.Same(r1, r2)
	s.Equal(model.RoomCode("ABC123"), r1.Code())
}

func (s *ManagerSuite) TestDistinctCodesGetDistinctRooms() {
	r1, err := s.manager.GetOrCreate("AAAA")
	s.Require().NoError(err)
	r2, err := s.manager.GetOrCreate("BBBB")
	s.Require().NoError(err)

	s.NotSame(r1, r2)
	s.Equal(2, s.manager.RoomCount())
}

func (s *ManagerSuite) TestInvalidCodeRejected() {
	_, err := s.manager.GetOrCreate("bad code!")
	s.ErrorIs(err, model.ErrInvalidRoomCode)

	_, err = s.manager.GetOrCreate("")
	s.ErrorIs(err, model.ErrInvalidRoomCode)

	s.Equal(0, s.manager.RoomCount())
}

func (s *ManagerSuite) TestGet() {
	_, ok := s.manager.Get("ABC123")
	s.False(ok)

	created, err := s.manager.GetOrCreate("ABC123")
	s.Require().NoError(err)

	got, ok := s.manager.Get("abc123")
	s.True(ok)
	s.Same(created, got)
}

func (s *ManagerSuite) TestCloseAll() {
	_, err := s.manager.GetOrCreate("AAAA")
	s.Require().NoError(err)
	_, err = s.manager.GetOrCreate("BBBB")
	s.Require().NoError(err)

	s.manager.CloseAll()
	s.Equal(0, s.manager.RoomCount())
}
