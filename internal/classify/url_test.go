//nolint:testpackage // Testing internal classify requires same package access
package classify

import "testing"

func TestClassify_VideoShapes(t *testing.T) {
	videoURLs := []string{
		"https://www.youtube.com/shorts/abc123",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=abc123",
		"https://www.youtube.com/channel/UCabc123/videos",
		"https://www.youtube.com/playlist/PLabc123",
	}

	for _, u := range videoURLs {
		if got := Classify(u); got != KindVideo {
			t.Errorf("Classify(%q) = %s, want video", u, got)
		}
	}
}

func TestClassify_GenericShapes(t *testing.T) {
	genericURLs := []string{
		"https://example.com/about",
		"https://example.com/",
		"https://www.youtube.com/",
		"https://www.youtube.com/watch", // no v param
		"https://youtu.be/",
		"https://vimeo.com/12345",
		"https://notyoutube.com/watch?v=abc",
		"https://youtube.com.evil.example/watch?v=abc",
		"not a url at all",
	}

	for _, u := range genericURLs {
		if got := Classify(u); got != KindGeneric {
			t.Errorf("Classify(%q) = %s, want generic", u, got)
		}
	}
}

func TestClassify_NeverErrors(t *testing.T) {
	// Classification is total over its input domain.
	inputs := []string{"", "://", "%%%", "http://"}
	for _, u := range inputs {
		got := Classify(u)
		if got != KindGeneric && got != KindVideo {
			t.Errorf("Classify(%q) returned unexpected kind %s", u, got)
		}
	}
}
