package prefs

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	s, err := NewRedisStore("redis://" + m.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, m
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, _ := setupTestRedis(t)

	_, ok := s.Read()
	require.False(t, ok, "fresh store must be a miss")

	require.NoError(t, s.Write(true))
	v, ok := s.Read()
	require.True(t, ok)
	require.True(t, v)

	require.NoError(t, s.Write(false))
	v, ok = s.Read()
	require.True(t, ok, "an explicit false is present, not a miss")
	require.False(t, v)
}

func TestRedisStoreSetsTTL(t *testing.T) {
	s, m := setupTestRedis(t)
	require.NoError(t, s.Write(true))
	require.Equal(t, TTL, m.TTL(s.key))
}

func TestRedisStoreExpiry(t *testing.T) {
	s, m := setupTestRedis(t)
	require.NoError(t, s.Write(true))

	m.FastForward(TTL + 1)

	_, ok := s.Read()
	require.False(t, ok, "expired keys read as a miss")
}

func TestRedisStoreUnreachableServer(t *testing.T) {
	s, m := setupTestRedis(t)
	m.Close()

	_, ok := s.Read()
	require.False(t, ok, "a dead server degrades to a miss")
	require.Error(t, s.Write(true))
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url")
	require.Error(t, err)
}
