package helper

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaging(t *testing.T) {
	p := NewPaging("", "", DefaultPerPage, MaxPerPage)
	assert.Equal(t, Paging{Page: 1, PerPage: DefaultPerPage, Offset: 0, Limit: DefaultPerPage}, p)

	p = NewPaging("3", "500", DefaultPerPage, MaxPerPage)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, 2*MaxPerPage, p.Offset)

	p = NewPaging("-4", "abc", 10, MaxPerPage)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestNewPagingHugePageNeverGoesNegative(t *testing.T) {
	huge := strconv.Itoa(math.MaxInt)

	p := NewPaging(huge, "100", DefaultPerPage, MaxPerPage)
	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, (MaxPage-1)*100, p.Offset)

	// tanpa batas per_page: perkalian akan overflow, offset dijepit
	p = NewPaging(huge, huge, DefaultPerPage, 0)
	assert.GreaterOrEqual(t, p.Offset, 0)
	assert.Equal(t, math.MaxInt, p.Offset)
}
