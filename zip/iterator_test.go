package zip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeSheep123/multi-container/zip"
)

func TestAnyAll(t *testing.T) {
	z := newIntStr(t)

	assert.True(t, zip.Any[zip.View2[int, string]](z, func(v zip.View2[int, string]) bool {
		return *v.First() == 2
	}))
	assert.False(t, zip.Any[zip.View2[int, string]](z, func(v zip.View2[int, string]) bool {
		return *v.First() > 10
	}))

	assert.True(t, zip.All[zip.View2[int, string]](z, func(v zip.View2[int, string]) bool {
		return *v.First() > 0
	}))
	assert.False(t, zip.All[zip.View2[int, string]](z, func(v zip.View2[int, string]) bool {
		return *v.Second() == "a"
	}))
}

func TestFold(t *testing.T) {
	z := newIntStr(t)

	sum := zip.Fold[zip.View2[int, string]](z, 0, func(acc int, v zip.View2[int, string]) int {
		return acc + *v.First()
	})
	assert.Equal(t, 6, sum)

	joined := zip.Fold[zip.View2[int, string]](z, "", func(acc string, v zip.View2[int, string]) string {
		return acc + *v.Second()
	})
	assert.Equal(t, "abc", joined)
}

func TestCollectKeepsAliasing(t *testing.T) {
	z := newIntStr(t)

	views := zip.Collect[zip.View2[int, string]](z)
	assert.Len(t, views, 3)

	*views[1].First() = 42
	assert.Equal(t, 42, *z.Index(1).First())
}
