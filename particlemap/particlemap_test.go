package particlemap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlath-labs/aabbtree/particlemap"
)

type MapSuite struct {
	suite.Suite
}

func (s *MapSuite) TestInsertAndLookup() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	idx, err := m.Lookup(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint32(10), idx)
}

func (s *MapSuite) TestInsertDuplicateErrors() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	err := m.Insert(1, 20)
	require.True(s.T(), errors.Is(err, particlemap.ErrDuplicateID))
}

func (s *MapSuite) TestLookupUnknownErrors() {
	m := particlemap.New()
	_, err := m.Lookup(99)
	require.True(s.T(), errors.Is(err, particlemap.ErrUnknownID))
}

func (s *MapSuite) TestRemove() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	require.NoError(s.T(), m.Remove(1))
	require.False(s.T(), m.Has(1))

	err := m.Remove(1)
	require.True(s.T(), errors.Is(err, particlemap.ErrUnknownID))
}

func (s *MapSuite) TestSetOverwritesWithoutDuplicateCheck() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	m.Set(1, 20)
	idx, err := m.Lookup(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint32(20), idx)
}

func (s *MapSuite) TestLenAndClear() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	require.NoError(s.T(), m.Insert(2, 20))
	require.Equal(s.T(), 2, m.Len())

	m.Clear()
	require.Equal(s.T(), 0, m.Len())
	require.False(s.T(), m.Has(1))
}

func (s *MapSuite) TestIDs() {
	m := particlemap.New()
	require.NoError(s.T(), m.Insert(1, 10))
	require.NoError(s.T(), m.Insert(2, 20))
	ids := m.IDs()
	require.ElementsMatch(s.T(), []uint64{1, 2}, ids)
}

func TestMapSuite(t *testing.T) {
	suite.Run(t, new(MapSuite))
}
