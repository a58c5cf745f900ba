package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type CacheSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	cache *Client
	ctx   context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.cache = NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}))
	s.ctx = context.Background()
}

func (s *CacheSuite) TearDownTest() {
	_ = s.cache.Close()
}

func (s *CacheSuite) TestSetGetDelete() {
	s.Require().NoError(s.cache.Set(s.ctx, "k", []byte("v"), time.Minute))

	got, err := s.cache.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v"), got)

	s.Require().NoError(s.cache.Delete(s.ctx, "k"))
	got, err = s.cache.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *CacheSuite) TestTTLExpires() {
	s.Require().NoError(s.cache.Set(s.ctx, "k", []byte("v"), time.Second))
	s.mini.FastForward(2 * time.Second)

	got, _ := s.cache.Get(s.ctx, "k")
	s.Nil(got)
}

func (s *CacheSuite) TestJSONRoundTrip() {
	type stats struct {
		Players int `json:"players"`
	}
	s.Require().NoError(s.cache.SetJSON(s.ctx, "stats", stats{Players: 7}, time.Minute))

	var got stats
	s.True(s.cache.GetJSON(s.ctx, "stats", &got))
	s.Equal(7, got.Players)

	s.Require().NoError(s.cache.Set(s.ctx, "broken", []byte("{"), time.Minute))
	s.False(s.cache.GetJSON(s.ctx, "broken", &got))
}

func (s *CacheSuite) TestFailsSafeWhenRedisDown() {
	s.mini.Close()

	got, err := s.cache.Get(s.ctx, "k")
	s.NoError(err)
	s.Nil(got)
	s.NoError(s.cache.Set(s.ctx, "k", []byte("v"), time.Minute))
	s.NoError(s.cache.Delete(s.ctx, "k"))
	s.Error(s.cache.Ping(s.ctx))
}

func (s *CacheSuite) TestNilClientIsEmpty() {
	var c *Client

	got, err := c.Get(s.ctx, "k")
	s.NoError(err)
	s.Nil(got)
	s.NoError(c.Set(s.ctx, "k", []byte("v"), time.Minute))
	s.False(c.GetJSON(s.ctx, "k", &struct{}{}))
	s.Error(c.Ping(s.ctx))
}
