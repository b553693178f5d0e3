package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/util"
)

var baseTime = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

func newSortPicture(name string, size int64, created time.Time) *apitype.Picture {
	return apitype.NewPicture("/pictures/"+name, apitype.Metadata{
		ByteSize: size,
		Created:  created,
		Modified: created.Add(time.Hour),
		Accessed: created.Add(2 * time.Hour),
	})
}

func newSortPictures() []*apitype.Picture {
	return []*apitype.Picture{
		newSortPicture("c.jpg", 300, baseTime.Add(2*time.Minute)),
		newSortPicture("a.jpg", 100, baseTime.Add(3*time.Minute)),
		newSortPicture("d.jpg", 200, baseTime),
		newSortPicture("b.jpg", 400, baseTime.Add(time.Minute)),
	}
}

func TestSort_ByName(t *testing.T) {
	a := assert.New(t)

	pictures := newSortPictures()
	Sort(pictures, apitype.SortSpec{Field: apitype.SortByName, Order: apitype.Ascending})
	a.Equal([]string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}, names(pictures))

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByName, Order: apitype.Descending})
	a.Equal([]string{"d.jpg", "c.jpg", "b.jpg", "a.jpg"}, names(pictures))
}

func TestSort_ByWeight(t *testing.T) {
	a := assert.New(t)

	pictures := newSortPictures()
	Sort(pictures, apitype.SortSpec{Field: apitype.SortByWeight, Order: apitype.Ascending})
	a.Equal([]string{"a.jpg", "d.jpg", "c.jpg", "b.jpg"}, names(pictures))
}

func TestSort_ByTimestamps(t *testing.T) {
	a := assert.New(t)

	expected := []string{"d.jpg", "b.jpg", "c.jpg", "a.jpg"}
	for _, field := range []apitype.SortField{apitype.SortByCreated, apitype.SortByModified, apitype.SortByAccessed} {
		t.Run(field.String(), func(t *testing.T) {
			pictures := newSortPictures()
			Sort(pictures, apitype.SortSpec{Field: field, Order: apitype.Ascending})
			a.Equal(expected, names(pictures))
		})
	}
}

func TestSort_DescendingIsReverseOfAscending(t *testing.T) {
	a := assert.New(t)

	for _, field := range []apitype.SortField{apitype.SortByName, apitype.SortByWeight, apitype.SortByCreated} {
		ascending := newSortPictures()
		Sort(ascending, apitype.SortSpec{Field: field, Order: apitype.Ascending})
		descending := newSortPictures()
		Sort(descending, apitype.SortSpec{Field: field, Order: apitype.Descending})

		expected := names(ascending)
		util.Reverse(expected)
		a.Equal(expected, names(descending), field.String())
	}
}

func TestSort_IsStable(t *testing.T) {
	a := assert.New(t)

	pictures := []*apitype.Picture{
		newSortPicture("x.jpg", 10, baseTime),
		newSortPicture("y.jpg", 20, baseTime),
		newSortPicture("z.jpg", 10, baseTime),
		newSortPicture("w.jpg", 10, baseTime),
	}

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByWeight, Order: apitype.Ascending})
	a.Equal([]string{"x.jpg", "z.jpg", "w.jpg", "y.jpg"}, names(pictures))

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByWeight, Order: apitype.Ascending})
	a.Equal([]string{"x.jpg", "z.jpg", "w.jpg", "y.jpg"}, names(pictures))

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByCreated, Order: apitype.Descending})
	a.Equal([]string{"x.jpg", "z.jpg", "w.jpg", "y.jpg"}, names(pictures))
}

func TestSort_MissingTimestampsFirst(t *testing.T) {
	a := assert.New(t)

	pictures := []*apitype.Picture{
		newSortPicture("late.jpg", 1, baseTime),
		apitype.NewPicture("/pictures/unknown.jpg", apitype.Metadata{}),
		newSortPicture("early.jpg", 1, baseTime.Add(-time.Hour)),
	}

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByCreated, Order: apitype.Ascending})
	a.Equal([]string{"unknown.jpg", "early.jpg", "late.jpg"}, names(pictures))

	Sort(pictures, apitype.SortSpec{Field: apitype.SortByAccessed, Order: apitype.Descending})
	a.Equal([]string{"late.jpg", "early.jpg", "unknown.jpg"}, names(pictures))
}

func TestSort_Empty(t *testing.T) {
	a := assert.New(t)

	var pictures []*apitype.Picture
	Sort(pictures, apitype.NewSortSpec())
	a.Empty(pictures)
}
