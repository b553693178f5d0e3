package apitype

// Option is a value/label pair the GUI lists in a select box. Values are
// what the Parse* functions accept.
type Option struct {
	Value string
	Label string
}

var (
	FormatOptions = []Option{
		{"none", "No reformating"},
		{"png", "PNG"},
		{"jpg", "JPG"},
		{"webp", "WEBP"},
		{"avif", "AVIF"},
		{"tiff", "TIFF"},
	}
	ResizeTypeOptions = []Option{
		{"none", "No resize"},
		{"exact", "Exact"},
		{"fill", "Fill"},
		{"thumbnail", "Thumbnail"},
	}
	ResizeMethodOptions = []Option{
		{"lanczos3", "Lanczos3"},
		{"nearest", "Nearest"},
		{"catmullrom", "CatmullRom"},
		{"triangle", "Triangle"},
		{"gaussian", "Gaussian"},
	}
	AngleOptions = []Option{
		{"none", "0 deg"},
		{"90", "90 deg"},
		{"180", "180 deg"},
		{"270", "270 deg"},
	}
	SortFieldOptions = []Option{
		{"name", "Name"},
		{"weight", "Weight"},
		{"created", "Created"},
		{"modified", "Modified"},
		{"accessed", "Accessed"},
	}
)

var (
	formatValues = map[string]ImageFormat{
		"png":  FormatPNG,
		"jpg":  FormatJPEG,
		"webp": FormatWebP,
		"avif": FormatAVIF,
		"tiff": FormatTIFF,
	}
	resizeTypeValues = map[string]ResizeType{
		"exact":     ResizeExact,
		"fill":      ResizeFill,
		"thumbnail": ResizeThumbnail,
	}
	resizeMethodValues = map[string]ResizeMethod{
		"lanczos3":   Lanczos3,
		"nearest":    NearestNeighbor,
		"catmullrom": CatmullRom,
		"triangle":   Triangle,
		"gaussian":   Gaussian,
	}
	angleValues = map[string]Angle{
		"90":  Angle90,
		"180": Angle180,
		"270": Angle270,
	}
	sortFieldValues = map[string]SortField{
		"name":     SortByName,
		"weight":   SortByWeight,
		"created":  SortByCreated,
		"modified": SortByModified,
		"accessed": SortByAccessed,
	}
)

// ParseFormat returns FormatUnchanged for unknown values.
func ParseFormat(value string) ImageFormat {
	if format, ok := formatValues[value]; ok {
		return format
	}
	return FormatUnchanged
}

// ParseResizeType returns ResizeNone for unknown values.
func ParseResizeType(value string) ResizeType {
	if resizeType, ok := resizeTypeValues[value]; ok {
		return resizeType
	}
	return ResizeNone
}

// ParseResizeMethod returns Lanczos3 for unknown values.
func ParseResizeMethod(value string) ResizeMethod {
	if method, ok := resizeMethodValues[value]; ok {
		return method
	}
	return Lanczos3
}

// ParseAngle returns AngleNone for unknown values.
func ParseAngle(value string) Angle {
	if angle, ok := angleValues[value]; ok {
		return angle
	}
	return AngleNone
}

// ParseSortField returns SortByName for unknown values.
func ParseSortField(value string) SortField {
	if field, ok := sortFieldValues[value]; ok {
		return field
	}
	return SortByName
}

func (s ResizeMethod) String() string {
	return labelOf(ResizeMethodOptions, int(s))
}

func (s SortField) String() string {
	return labelOf(SortFieldOptions, int(s))
}

func labelOf(options []Option, index int) string {
	if index >= 0 && index < len(options) {
		return options[index].Label
	}
	return "Unknown"
}
