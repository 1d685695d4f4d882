// Package rewrite injects responsive layout and animation markup into page
// sources.
//
// Every step is a pure string -> string function built on pattern
// substitution. Each targets one known markup shape and leaves content
// without that shape untouched.
package rewrite

import (
	"regexp"
	"strings"
)

// Marker strings. Content holding both has been rewritten before.
const (
	MotionMarker = "motion.div"
	MobileMarker = "isMobile"
)

// Step is one named rewrite applied to whole-file content.
type Step struct {
	Name  string
	Apply func(string) string
}

// DefaultSteps returns the page rewrites in the order they must run.
func DefaultSteps() []Step {
	return []Step{
		{Name: "mobile-detection", Apply: AddMobileDetection},
		{Name: "loading-state", Apply: AnimateLoadingState},
		{Name: "empty-state", Apply: AnimateEmptyState},
		{Name: "grid-classes", Apply: RewriteGridClasses},
		{Name: "grid-items", Apply: AnimateGridItems},
		{Name: "buttons", Apply: AnimateButtons},
		{Name: "container-padding", Apply: RewriteContainerPadding},
		{Name: "search-bar", Apply: AnimateSearchBar},
	}
}

// IsApplied reports whether content carries both rewrite markers.
func IsApplied(content string) bool {
	return strings.Contains(content, MotionMarker) && strings.Contains(content, MobileMarker)
}

// ApplySteps runs steps in order and returns the result together with the
// names of the steps that changed something.
func ApplySteps(content string, steps []Step) (string, []string) {
	var changed []string
	for _, step := range steps {
		next := step.Apply(content)
		if next != content {
			changed = append(changed, step.Name)
		}
		content = next
	}
	return content, changed
}

var useStatePattern = regexp.MustCompile(`const \[.*?\] = useState.*?\n`)

const mobileDetection = `  const [isMobile, setIsMobile] = useState(false)

  useEffect(() => {
    const checkMobile = () => setIsMobile(window.innerWidth < 1024)
    checkMobile()
    window.addEventListener('resize', checkMobile)
    return () => window.removeEventListener('resize', checkMobile)
  }, [])

`

// AddMobileDetection inserts the isMobile state and its resize listener
// after the first useState declaration line. Content that already mentions
// isMobile, or declares no state, is returned unchanged.
func AddMobileDetection(content string) string {
	if strings.Contains(content, MobileMarker) {
		return content
	}
	loc := useStatePattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[1]] + mobileDetection + content[loc[1]:]
}

var loadingPattern = regexp.MustCompile(
	`(?s)<div className="flex items-center justify-center py-\d+">\s*` +
		`<div className="animate-spin[^>]*></div>\s*` +
		`<span[^>]*>.*?</span>\s*</div>`)

const animatedLoading = `<div className="flex flex-col items-center justify-center py-16">
          <motion.div animate={{ rotate: 360 }} transition={{ duration: 1, repeat: Infinity, ease: 'linear' }} className="rounded-full h-10 w-10 border-2 border-cyan-500 border-t-transparent" />
          <span className="mt-3 text-gray-600 font-medium">{t('common.loading') || 'Đang tải...'}</span>
        </div>`

// AnimateLoadingState replaces every spinner block with a rotating
// motion.div spinner.
func AnimateLoadingState(content string) string {
	return loadingPattern.ReplaceAllLiteralString(content, animatedLoading)
}

const (
	emptyStateOpen     = `<div className="bg-white rounded-xl`
	animatedEmptyState = `<motion.div initial={{ scale: 0.9, opacity: 0 }} animate={{ scale: 1, opacity: 1 }} className="bg-white rounded-xl`
)

var emptyStateClosePattern = regexp.MustCompile(`</div>\s*\)\s*:\s*\(`)

// AnimateEmptyState turns every empty-state card into a motion.div and
// closes the first one at the first "</div> ) : (" construct.
//
// Only the first closing construct is rewritten, whatever the number of
// cards. The closing is left alone when no card was found in this pass, so a
// second pass cannot close an unrelated element.
func AnimateEmptyState(content string) string {
	if !strings.Contains(content, emptyStateOpen) {
		return content
	}
	content = strings.ReplaceAll(content, emptyStateOpen, animatedEmptyState)

	loc := emptyStateClosePattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + "</motion.div>) : (" + content[loc[1]:]
}

// Grid class strings.
const (
	GridClasses      = "grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4"
	DenseGridClasses = "grid grid-cols-2 sm:grid-cols-2 md:grid-cols-3 lg:grid-cols-4 xl:grid-cols-5"
)

// RewriteGridClasses swaps the four-step grid for the denser five-step grid.
func RewriteGridClasses(content string) string {
	return strings.ReplaceAll(content, GridClasses, DenseGridClasses)
}

var gridItemPattern = regexp.MustCompile(`<div\s+key=\{(\w+)\.id\}\s+className="animate-slideUp[^"]*"[^>]*>`)

const animatedGridItem = `<motion.div key={${1}.id} initial={{ opacity: 0, y: 20 }} animate={{ opacity: 1, y: 0 }} transition={{ delay: index * 0.05, duration: 0.3 }}>`

// AnimateGridItems turns slide-up grid items into motion.div items with a
// delay staggered by index, then closes each one. See closeGridItems for
// how the closing tag is found.
func AnimateGridItems(content string) string {
	content = gridItemPattern.ReplaceAllString(content, animatedGridItem)
	return closeGridItems(content)
}

var buttonOpenPattern = regexp.MustCompile(`<button(\s+|>)`)

const animatedButton = `<motion.button whileTap={{ scale: 0.95 }}`

// AnimateButtons gives every button tap feedback. Openers and closers are
// rewritten together so their counts stay equal.
func AnimateButtons(content string) string {
	content = buttonOpenPattern.ReplaceAllStringFunc(content, func(m string) string {
		if strings.HasSuffix(m, ">") {
			return animatedButton + ">"
		}
		return animatedButton + " "
	})
	return strings.ReplaceAll(content, "</button>", "</motion.button>")
}

const (
	containerPadding           = `className="max-w-7xl mx-auto px-6 py-8"`
	responsiveContainerPadding = `className="px-4 lg:px-8 py-6 lg:py-8"`
)

// RewriteContainerPadding replaces the fixed page container with responsive
// padding.
func RewriteContainerPadding(content string) string {
	return strings.ReplaceAll(content, containerPadding, responsiveContainerPadding)
}

var searchBarPattern = regexp.MustCompile(`<div className="mb-6[^"]*">\s*<div className="relative[^>]*>`)

const animatedSearchBar = `<motion.div initial={{ y: 20, opacity: 0 }} animate={{ y: 0, opacity: 1 }} transition={{ delay: 0.1 }} className="mb-6">
          <div className="relative">`

// AnimateSearchBar wraps the search bar in an entrance animation. Only the
// opening tags are rewritten; the outer closing tag stays "</div>".
func AnimateSearchBar(content string) string {
	return searchBarPattern.ReplaceAllLiteralString(content, animatedSearchBar)
}
