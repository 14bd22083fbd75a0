package render

import (
	"html/template"

	"mytodos/internal/models"
)

// PriorityStripeClass colors the left edge of a task card.
func PriorityStripeClass(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "bg-red-500"
	case models.PriorityMedium:
		return "bg-yellow-500"
	default:
		return "bg-green-500"
	}
}

// CardClass dims completed cards.
func CardClass(s models.Status) string {
	if s == models.StatusCompleted {
		return "bg-neutral-800 opacity-60"
	}
	return "bg-neutral-800 hover:bg-neutral-700"
}

// StatusButtonClass colors the status toggle.
func StatusButtonClass(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return "border-green-500 bg-green-500 text-white"
	case models.StatusInProgress:
		return "border-yellow-500 bg-yellow-500 text-white"
	default:
		return "border-gray-500 text-gray-500"
	}
}

// StatusGlyph names the icon drawn inside the status toggle.
func StatusGlyph(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return "check"
	case models.StatusInProgress:
		return "play"
	default:
		return "circle"
	}
}

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="lucide lucide-`

var icons = map[string]template.HTML{
	"check":    template.HTML(svgOpen + `check"><path d="M20 6 9 17l-5-5"/></svg>`),
	"play":     template.HTML(svgOpen + `play"><path d="M5 5a2 2 0 0 1 3.008-1.728l11.997 6.998a2 2 0 0 1 .003 3.458l-12 7A2 2 0 0 1 5 19z"/></svg>`),
	"circle":   template.HTML(svgOpen + `circle"><circle cx="12" cy="12" r="10"/></svg>`),
	"pencil":   template.HTML(svgOpen + `pencil"><path d="M21.174 6.812a1 1 0 0 0-3.986-3.987L3.842 16.174a2 2 0 0 0-.5.83l-1.321 4.352a.5.5 0 0 0 .623.622l4.353-1.32a2 2 0 0 0 .83-.497z"/><path d="m15 5 4 4"/></svg>`),
	"trash":    template.HTML(svgOpen + `trash-2"><path d="M10 11v6"/><path d="M14 11v6"/><path d="M19 6v14a2 2 0 0 1-2 2H7a2 2 0 0 1-2-2V6"/><path d="M3 6h18"/><path d="M8 6V4a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v2"/></svg>`),
	"calendar": template.HTML(svgOpen + `calendar mr-1"><path d="M8 2v4"/><path d="M16 2v4"/><rect width="18" height="18" x="3" y="4" rx="2"/><path d="M3 10h18"/></svg>`),
}

// Icon returns the named inline SVG, or nothing for an unknown name.
func Icon(name string) template.HTML {
	return icons[name]
}

// StatusIcon returns the inline SVG for the status toggle.
func StatusIcon(s models.Status) template.HTML {
	return icons[StatusGlyph(s)]
}

// TextClass strikes through completed task text.
func TextClass(s models.Status) string {
	if s == models.StatusCompleted {
		return "line-through text-gray-500"
	}
	return ""
}

// PriorityButtonClass highlights the selected priority control.
func PriorityButtonClass(selected bool) string {
	if selected {
		return "ring-red-500 ring-2 ring-offset-2 ring-offset-neutral-800"
	}
	return ""
}

// FilterButtonClass highlights the active filter control.
func FilterButtonClass(selected bool) string {
	if selected {
		return "bg-indigo-600 text-white shadow-lg"
	}
	return "bg-neutral-800 text-gray-400 hover:bg-neutral-700"
}
