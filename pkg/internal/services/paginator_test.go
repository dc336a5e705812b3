package services

import (
	"fmt"
	"testing"

	"github.com/lumenblog/lumen/pkg/internal/database"
	"github.com/lumenblog/lumen/pkg/internal/models"
)

func TestPaginateClampsLikeGetPage(t *testing.T) {
	testDB(t)

	author := seedAccount(t, "writer")
	for i := 0; i < 25; i++ {
		seedPost(t, author, fmt.Sprintf("post %d", i), nil)
	}

	out, err := Paginate[models.Post](database.C, timelineOrder, 2)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if out.Number != 2 || len(out.Items) != 10 {
		t.Fatalf("page 2: number=%d items=%d want number=2 items=10", out.Number, len(out.Items))
	}
	if out.TotalItems != 25 || out.TotalPages != 3 {
		t.Fatalf("totals: items=%d pages=%d want items=25 pages=3", out.TotalItems, out.TotalPages)
	}
	if !out.HasNext || !out.HasPrev {
		t.Fatalf("page 2 should have both neighbours")
	}

	// Past the end clamps to the last page.
	out, err = Paginate[models.Post](database.C, timelineOrder, 9)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if out.Number != 3 || len(out.Items) != 5 {
		t.Fatalf("page 9: number=%d items=%d want number=3 items=5", out.Number, len(out.Items))
	}

	// Below one clamps to the first page.
	out, err = Paginate[models.Post](database.C, timelineOrder, 0)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if out.Number != 1 || len(out.Items) != 10 {
		t.Fatalf("page 0: number=%d items=%d want number=1 items=10", out.Number, len(out.Items))
	}
}

func TestPaginateEmptySetHasOnePage(t *testing.T) {
	testDB(t)

	out, err := Paginate[models.Post](database.C, timelineOrder, 7)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if out.Number != 1 || out.TotalPages != 1 || len(out.Items) != 0 {
		t.Fatalf("empty set: number=%d pages=%d items=%d want 1/1/0", out.Number, out.TotalPages, len(out.Items))
	}
}
