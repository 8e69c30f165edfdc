package changeset

import (
	"fmt"
	"strings"
)

// Status identifies the bucket a record was reported in
type Status string

const (
	StatusCreated      Status = "created"
	StatusUpdated      Status = "updated"
	StatusDeleted      Status = "deleted"
	StatusMoved        Status = "moved"
	StatusLostAndFound Status = "lost_and_found"
)

// Statuses returns all statuses in their declared order
func Statuses() []Status {
	return []Status{StatusCreated, StatusUpdated, StatusDeleted, StatusMoved, StatusLostAndFound}
}

// ParseStatus converts a document token into a Status
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

// StoreCategory is the content-store partition an element belongs to.
// Values are ordered by declaration; the zero value is not a valid category.
type StoreCategory int

const (
	StorePage StoreCategory = iota + 1
	StoreMedia
	StoreSite
	StoreTemplate
	StoreContent
	StoreGlobal
)

var storeNames = map[StoreCategory]string{
	StorePage:     "PAGESTORE",
	StoreMedia:    "MEDIASTORE",
	StoreSite:     "SITESTORE",
	StoreTemplate: "TEMPLATESTORE",
	StoreContent:  "CONTENTSTORE",
	StoreGlobal:   "GLOBALSTORE",
}

// StoreCategories returns all store categories in declared order
func StoreCategories() []StoreCategory {
	return []StoreCategory{StorePage, StoreMedia, StoreSite, StoreTemplate, StoreContent, StoreGlobal}
}

// String returns the upper-case token of the category, e.g. PAGESTORE
func (c StoreCategory) String() string {
	if name, ok := storeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("StoreCategory(%d)", int(c))
}

// Valid reports whether c is one of the declared categories
func (c StoreCategory) Valid() bool {
	_, ok := storeNames[c]
	return ok
}

// Lower returns the lower-case name used in report lines, e.g. pagestore
func (c StoreCategory) Lower() string {
	return strings.ToLower(c.String())
}

// ParseStoreCategory accepts a category token in any case
func ParseStoreCategory(s string) (StoreCategory, error) {
	for _, c := range StoreCategories() {
		if strings.EqualFold(s, storeNames[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown store category: %q", s)
}

// PropertyKind is a project-level property bundle. PropertyNone marks the
// metadata pseudo-property.
type PropertyKind int

const (
	PropertyNone PropertyKind = iota
	PropertyCommon
	PropertyResolutions
	PropertyGroups
	PropertyScheduleEntries
	PropertyTemplateSets
	PropertyFonts
	PropertyModuleConfigurations
	PropertyUsers
	PropertyLanguages
	PropertyCustomProperties
)

var propertyNames = map[PropertyKind]string{
	PropertyCommon:               "COMMON",
	PropertyResolutions:          "RESOLUTIONS",
	PropertyGroups:               "GROUPS",
	PropertyScheduleEntries:      "SCHEDULE_ENTRIES",
	PropertyTemplateSets:         "TEMPLATE_SETS",
	PropertyFonts:                "FONTS",
	PropertyModuleConfigurations: "MODULE_CONFIGURATIONS",
	PropertyUsers:                "USERS",
	PropertyLanguages:            "LANGUAGES",
	PropertyCustomProperties:     "CUSTOM_PROPERTIES",
}

// PropertyKinds returns the concrete property kinds in canonical order
func PropertyKinds() []PropertyKind {
	return []PropertyKind{
		PropertyCommon,
		PropertyResolutions,
		PropertyGroups,
		PropertyScheduleEntries,
		PropertyTemplateSets,
		PropertyFonts,
		PropertyModuleConfigurations,
		PropertyUsers,
		PropertyLanguages,
		PropertyCustomProperties,
	}
}

// String returns the separator-delimited token, e.g. SCHEDULE_ENTRIES
func (k PropertyKind) String() string {
	if k == PropertyNone {
		return ""
	}
	if name, ok := propertyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PropertyKind(%d)", int(k))
}

// ParsePropertyKind accepts a property token in any case. An empty token
// yields PropertyNone.
func ParsePropertyKind(s string) (PropertyKind, error) {
	if s == "" {
		return PropertyNone, nil
	}
	for _, k := range PropertyKinds() {
		if strings.EqualFold(s, propertyNames[k]) {
			return k, nil
		}
	}
	return PropertyNone, fmt.Errorf("unknown property kind: %q", s)
}

// Kind discriminates the variants of Record
type Kind int

const (
	KindElement Kind = iota + 1
	KindProperty
	KindEntityType
	KindMetadata
)

// String returns the document token of the kind
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindProperty:
		return "property"
	case KindEntityType:
		return "entity_type"
	case KindMetadata:
		return "metadata"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
