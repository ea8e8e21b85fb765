package pagination

import (
	"math"
	"net/url"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		defaultSize int
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults", query: "", defaultSize: 20, wantPage: 1, wantPerPage: 20},
		{name: "custom page size", query: "per_page=5", defaultSize: 20, wantPage: 1, wantPerPage: 5},
		{name: "limit alias", query: "limit=7", defaultSize: 20, wantPage: 1, wantPerPage: 7},
		{name: "per_page wins over limit", query: "per_page=3&limit=7", defaultSize: 20, wantPage: 1, wantPerPage: 3},
		{name: "page size over max clamped", query: "per_page=5000", defaultSize: 20, wantPage: 1, wantPerPage: MaxPerPage},
		{name: "negative page size uses default", query: "per_page=-1", defaultSize: 50, wantPage: 1, wantPerPage: 50},
		{name: "garbage page size uses default", query: "per_page=abc", defaultSize: 50, wantPage: 1, wantPerPage: 50},
		{name: "page number", query: "page=3&per_page=10", defaultSize: 20, wantPage: 3, wantPerPage: 10},
		{name: "zero page is page one", query: "page=0", defaultSize: 20, wantPage: 1, wantPerPage: 20},
		{name: "zero default falls back", query: "", defaultSize: 0, wantPage: 1, wantPerPage: DefaultPerPage},
		{name: "huge page is bounded", query: "page=922337203685477581&per_page=20", defaultSize: 20, wantPage: math.MaxInt / 20, wantPerPage: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			req := ParseRequest(q, tt.defaultSize)
			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", req.PerPage, tt.wantPerPage)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	tests := []struct {
		name        string
		req         Request
		wantLen     int
		wantFirst   string
		wantLast    string
		wantHasMore bool
	}{
		{name: "first page", req: Request{Page: 1, PerPage: 3}, wantLen: 3, wantFirst: "a", wantLast: "c", wantHasMore: true},
		{name: "second page", req: Request{Page: 2, PerPage: 3}, wantLen: 3, wantFirst: "d", wantLast: "f", wantHasMore: true},
		{name: "last page partial", req: Request{Page: 4, PerPage: 3}, wantLen: 1, wantFirst: "j", wantLast: "j", wantHasMore: false},
		{name: "exact last page", req: Request{Page: 2, PerPage: 5}, wantLen: 5, wantFirst: "f", wantLast: "j", wantHasMore: false},
		{name: "page beyond end", req: Request{Page: 50, PerPage: 5}, wantLen: 0, wantHasMore: false},
		{name: "all items in one page", req: Request{Page: 1, PerPage: 100}, wantLen: 10, wantFirst: "a", wantLast: "j", wantHasMore: false},
		{name: "zero request uses defaults", req: Request{}, wantLen: 10, wantFirst: "a", wantLast: "j", wantHasMore: false},
		{name: "huge page is empty", req: Request{Page: 922337203685477581, PerPage: 20}, wantLen: 0, wantHasMore: false},
		{name: "max int page is empty", req: Request{Page: math.MaxInt, PerPage: 1}, wantLen: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.req)

			if len(page.Data) != tt.wantLen {
				t.Fatalf("page length = %d, want %d", len(page.Data), tt.wantLen)
			}
			if page.Total != len(items) {
				t.Errorf("total = %d, want %d", page.Total, len(items))
			}
			if len(page.Data) > page.PerPage {
				t.Errorf("page holds %d items, more than per_page %d", len(page.Data), page.PerPage)
			}
			if tt.wantLen > 0 {
				if page.Data[0] != tt.wantFirst {
					t.Errorf("first item = %q, want %q", page.Data[0], tt.wantFirst)
				}
				if page.Data[len(page.Data)-1] != tt.wantLast {
					t.Errorf("last item = %q, want %q", page.Data[len(page.Data)-1], tt.wantLast)
				}
			}
			if page.HasMore == nil || *page.HasMore != tt.wantHasMore {
				t.Errorf("has_more = %v, want %v", page.HasMore, tt.wantHasMore)
			}
		})
	}
}

func TestPaginateChainedPages(t *testing.T) {
	// Walking pages until has_more is false must visit every item exactly once.
	items := make([]int, 27)
	for i := range items {
		items[i] = i
	}

	var collected []int
	req := Request{Page: 1, PerPage: 5}
	pages := 0

	for {
		page := Paginate(items, req)
		collected = append(collected, page.Data...)
		pages++
		if !*page.HasMore {
			break
		}
		req.Page++
		if pages > 100 {
			t.Fatal("too many pages, possible infinite loop")
		}
	}

	if len(collected) != len(items) {
		t.Fatalf("collected %d items, expected %d", len(collected), len(items))
	}
	for i, v := range collected {
		if v != items[i] {
			t.Fatalf("item %d: got %d, want %d", i, v, items[i])
		}
	}
	if pages != 6 {
		t.Fatalf("expected 6 pages, got %d", pages)
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"x", "y"}, 12, Request{Page: 1, PerPage: 2})
	if page.Total != 12 || page.Page != 1 || page.PerPage != 2 {
		t.Errorf("unexpected page header: %+v", page)
	}
	if !*page.HasMore {
		t.Error("expected has_more for 2 of 12 items")
	}

	empty := NewPage[string](nil, -3, Request{Page: 1, PerPage: 10})
	if empty.Data == nil {
		t.Error("expected non-nil data slice so it encodes as []")
	}
	if empty.Total != 0 {
		t.Errorf("negative total should clamp to 0, got %d", empty.Total)
	}
}

func TestRequestOffset(t *testing.T) {
	if got := (Request{Page: 3, PerPage: 10}).Offset(); got != 20 {
		t.Errorf("Offset = %d, want 20", got)
	}
	if got := (Request{}).Offset(); got != 0 {
		t.Errorf("Offset of zero request = %d, want 0", got)
	}
	if got := (Request{Page: 922337203685477581, PerPage: 20}).Offset(); got != math.MaxInt {
		t.Errorf("Offset of huge page = %d, want saturation at MaxInt", got)
	}
}

func TestNewPagePastEnd(t *testing.T) {
	req := Request{Page: 922337203685477581, PerPage: 20}
	page := NewPage([]string{"x"}, 12, req)
	if *page.HasMore {
		t.Error("page far past the end must not report has_more")
	}
}
