package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestPutAndScanPrefix() {
	s.Require().NoError(s.store.Put(s.ctx, "finance:f1:a", []byte("one")))
	s.Require().NoError(s.store.Put(s.ctx, "finance:f1:b", []byte("two")))
	s.Require().NoError(s.store.Put(s.ctx, "finance:f2:c", []byte("other owner")))

	values, err := s.store.ScanPrefix(s.ctx, "finance:f1:")
	s.Require().NoError(err)
	s.Len(values, 2)

	all, err := s.store.ScanPrefix(s.ctx, "finance:")
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *MemoryStoreSuite) TestScanPrefixEmpty() {
	values, err := s.store.ScanPrefix(s.ctx, "missing:")
	s.Require().NoError(err)
	s.Empty(values)
}

func (s *MemoryStoreSuite) TestPutIsLastWriteWins() {
	s.Require().NoError(s.store.Put(s.ctx, "k", []byte("first")))
	s.Require().NoError(s.store.Put(s.ctx, "k", []byte("second")))

	values, err := s.store.ScanPrefix(s.ctx, "k")
	s.Require().NoError(err)
	s.Require().Len(values, 1)
	s.Equal("second", string(values[0]))
}

func (s *MemoryStoreSuite) TestValuesAreCopied() {
	payload := []byte("original")
	s.Require().NoError(s.store.Put(s.ctx, "k", payload))
	payload[0] = 'X'

	values, err := s.store.ScanPrefix(s.ctx, "k")
	s.Require().NoError(err)
	s.Require().Len(values, 1)
	s.Equal("original", string(values[0]))
}

func (s *MemoryStoreSuite) TestScanPrefixKeysAndDelete() {
	s.Require().NoError(s.store.Put(s.ctx, "profit_calc:1", []byte("a")))
	s.Require().NoError(s.store.Put(s.ctx, "profit_calc:2", []byte("b")))

	keys, err := s.store.ScanPrefixKeys(s.ctx, "profit_calc:")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"profit_calc:1", "profit_calc:2"}, keys)

	s.Require().NoError(s.store.Delete(s.ctx, "profit_calc:1"))
	s.Require().NoError(s.store.Delete(s.ctx, "profit_calc:1")) // idempotent

	keys, err = s.store.ScanPrefixKeys(s.ctx, "profit_calc:")
	s.Require().NoError(err)
	s.Equal([]string{"profit_calc:2"}, keys)
}
