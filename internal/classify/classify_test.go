package classify

import "testing"

func TestCategorizeDefaults(t *testing.T) {
	c := New(nil, "")
	cases := map[string]string{
		"photo.jpg":    "Images",
		"PHOTO.JPG":    "Images",
		"notes.txt":    "Documents",
		"data.csv":     "Spreadsheets",
		"deck.pptx":    "Presentations",
		"clip.mkv":     "Videos",
		"song.flac":    "Audio",
		"backup.7z":    "Archives",
		"main.go":      "Code",
		"setup.msi":    "Executables",
		"unknown.xyz":  "Miscellaneous",
		"no-extension": "Miscellaneous",
	}
	for name, want := range cases {
		if got := c.Categorize(name); got != want {
			t.Errorf("Categorize(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCustomCategoriesWinOverDefaults(t *testing.T) {
	custom := map[string][]string{
		"Design Files": {".psd", ".jpg"},
	}
	c := New(custom, "")

	if got := c.Categorize("mock.psd"); got != "Design Files" {
		t.Fatalf("Categorize(mock.psd) = %q", got)
	}
	// .jpg is claimed by both; custom must win.
	if got := c.Categorize("photo.jpg"); got != "Design Files" {
		t.Fatalf("Categorize(photo.jpg) = %q, want custom category", got)
	}
	// An unrelated default still resolves normally.
	if got := c.Categorize("notes.txt"); got != "Documents" {
		t.Fatalf("Categorize(notes.txt) = %q", got)
	}
}

func TestCustomFallback(t *testing.T) {
	c := New(nil, "Other")
	if got := c.Categorize("strange.xyz"); got != "Other" {
		t.Fatalf("Categorize = %q, want Other", got)
	}
	if got := c.Fallback(); got != "Other" {
		t.Fatalf("Fallback = %q", got)
	}
}

func TestExtensionClaimedTwiceIsDeterministic(t *testing.T) {
	custom := map[string][]string{
		"Alpha": {".dup"},
		"Beta":  {".dup"},
	}
	// Sorted category order breaks the tie, so Alpha wins every time.
	for i := 0; i < 10; i++ {
		c := New(custom, "")
		if got := c.Categorize("file.dup"); got != "Alpha" {
			t.Fatalf("Categorize(file.dup) = %q on run %d", got, i)
		}
	}
}

func TestIndexNormalizesExtensions(t *testing.T) {
	custom := map[string][]string{
		"Ebooks": {"EPUB", " .mobi "},
	}
	c := New(custom, "")
	if got := c.Categorize("book.epub"); got != "Ebooks" {
		t.Fatalf("Categorize(book.epub) = %q", got)
	}
	if got := c.Categorize("book.mobi"); got != "Ebooks" {
		t.Fatalf("Categorize(book.mobi) = %q", got)
	}
}
