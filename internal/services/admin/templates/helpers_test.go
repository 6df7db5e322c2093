package templates

import (
	"context"
	"strings"
	"testing"
)

func TestAppendQueryParam(t *testing.T) {
	if got := AppendQueryParam("/products", "page_token", "25"); got != "/products?page_token=25" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := AppendQueryParam("/products?filter=a", "page_token", "x y"); got != "/products?filter=a&page_token=x+y" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestLayoutEscapesAndWrapsContent(t *testing.T) {
	var out strings.Builder
	page := Layout(PageContext{Lang: "en"}, "title.dashboard", textComponent("<section>inner</section>"))
	if err := page.Render(context.Background(), &out); err != nil {
		t.Fatalf("render: %v", err)
	}
	body := out.String()
	if !strings.Contains(body, "<main class=\"content\"><section>inner</section></main>") {
		t.Fatalf("expected content inside main, got %q", body)
	}
	if !strings.Contains(body, Brand) {
		t.Fatal("expected brand in layout")
	}
}

func TestProductsTableEscapesValues(t *testing.T) {
	var out strings.Builder
	table := ProductsTable(PageContext{}, ProductsPageView{
		Rows: []ProductRow{{ID: "p1", Name: `<script>alert("x")</script>`, Price: "$1.00"}},
	})
	if err := table.Render(context.Background(), &out); err != nil {
		t.Fatalf("render: %v", err)
	}
	body := out.String()
	if strings.Contains(body, "<script>alert") {
		t.Fatal("expected product name to be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("expected escaped name, got %q", body)
	}
}

func TestCategoriesTreeIndentsByDepth(t *testing.T) {
	var out strings.Builder
	tree := CategoriesTree(PageContext{}, CategoriesPageView{
		Rows: []CategoryTreeRow{
			{ID: "a", Name: "Clothing", Depth: 0},
			{ID: "b", Name: "Shoes", Depth: 2},
		},
	})
	if err := tree.Render(context.Background(), &out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "— — ") {
		t.Fatalf("expected depth-2 indent, got %q", out.String())
	}
}

func TestRoleFormChecksCurrentAccess(t *testing.T) {
	var out strings.Builder
	form := RoleFormContent(PageContext{}, RoleFormView{
		Name:  "Editor",
		Level: "40",
		Resources: []RolePermissionField{
			{Resource: "products", Label: "Products", Access: "write"},
		},
	})
	if err := form.Render(context.Background(), &out); err != nil {
		t.Fatalf("render: %v", err)
	}
	body := out.String()
	if !strings.Contains(body, `name="perm_products" value="write" checked`) {
		t.Fatalf("expected write access checked, got %q", body)
	}
}
