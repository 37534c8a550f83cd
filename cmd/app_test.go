package cmd

import (
	"path/filepath"
	"testing"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
)

// pointStoreAt redirects the snapshot file flag to a temp location for the
// duration of the test.
func pointStoreAt(t *testing.T, path string) {
	t.Helper()
	old := *snapshotFile
	*snapshotFile = path
	t.Cleanup(func() { *snapshotFile = old })
}

func TestLoadStore_MissingFile(t *testing.T) {
	pointStoreAt(t, filepath.Join(t.TempDir(), "gestao.json"))

	store, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore() on a missing file = %v, want an empty store", err)
	}
	if len(store.Sales()) != 0 || len(store.Products()) != 0 {
		t.Error("missing file did not load as an empty store")
	}
	if !store.Target().Equal(gestao.DefaultTarget) {
		t.Errorf("target = %s, want the default", store.Target())
	}
}

func TestSaveAndLoadStore(t *testing.T) {
	pointStoreAt(t, filepath.Join(t.TempDir(), "gestao.json"))

	store := gestao.NewStore()
	if err := store.AddFixedCost("Rent", gestao.M(1200)); err != nil {
		t.Fatal(err)
	}
	err := store.SaveProduct(gestao.ProductDraft{Name: "Wedding", SalePrice: gestao.M(5000)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Wedding", 1, gestao.Today()); err != nil {
		t.Fatal(err)
	}

	if err := saveStore(store); err != nil {
		t.Fatalf("saveStore() = %v", err)
	}
	loaded, err := loadStore()
	if err != nil {
		t.Fatalf("loadStore() = %v", err)
	}
	if len(loaded.FixedCosts()) != 1 || len(loaded.Products()) != 1 || len(loaded.Sales()) != 1 {
		t.Errorf("loaded counts = %d/%d/%d, want 1/1/1",
			len(loaded.FixedCosts()), len(loaded.Products()), len(loaded.Sales()))
	}
}

func TestCostLinesFlag(t *testing.T) {
	var lines costLinesFlag
	for _, v := range []string{"Cake=150", "Decoration=99.90", " Staff =80"} {
		if err := lines.Set(v); err != nil {
			t.Fatalf("Set(%q) = %v", v, err)
		}
	}
	if len(lines) != 3 {
		t.Fatalf("got %d cost lines, want 3", len(lines))
	}
	if lines[0].Item != "Cake" || !lines[0].Amount.Equal(gestao.M(150)) {
		t.Errorf("first line = %+v, want Cake 150", lines[0])
	}
	// the item is trimmed
	if lines[2].Item != "Staff" {
		t.Errorf("third item = %q, want %q", lines[2].Item, "Staff")
	}

	if err := lines.Set("no separator"); err == nil {
		t.Error("Set without = accepted")
	}
	if err := lines.Set("Cake=abc"); err == nil {
		t.Error("Set with a non-numeric amount accepted")
	}
}
