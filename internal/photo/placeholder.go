package photo

// placeholderSVG is a neutral "photo" glyph shown when no photo is available.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="150" viewBox="0 0 320 150">` +
	`<rect width="320" height="150" fill="#e5e7eb"/>` +
	`<rect x="130" y="45" width="60" height="45" rx="4" fill="none" stroke="#9ca3af" stroke-width="4"/>` +
	`<circle cx="148" cy="60" r="5" fill="#9ca3af"/>` +
	`<path d="M134 86l16-16 10 10 8-8 18 14z" fill="#9ca3af"/>` +
	`</svg>`

// Placeholder returns the image used whenever a lookup fails.
func Placeholder() Image {
	return Image{Data: []byte(placeholderSVG), ContentType: "image/svg+xml", Placeholder: true}
}
