package enum

// LinkStatus is the safety verdict for a single URL.
//
//go:generate go tool enumer -type=LinkStatus -trimprefix=LinkStatus -transform=snake -json
type LinkStatus int

const (
	// LinkStatusSafe indicates no security concerns were detected.
	LinkStatusSafe LinkStatus = iota
	// LinkStatusSuspicious indicates patterns that warrant caution but not certainty.
	LinkStatusSuspicious
	// LinkStatusDangerous indicates a match against known malicious hosts.
	LinkStatusDangerous
)

// LinkCategory is the inferred purpose of a URL.
//
//go:generate go tool enumer -type=LinkCategory -trimprefix=LinkCategory -transform=snake -json
type LinkCategory int

const (
	LinkCategoryRegistration LinkCategory = iota
	LinkCategoryLearning
	LinkCategoryProduct
	LinkCategorySupport
	LinkCategoryCommunity
	LinkCategoryDownload
	LinkCategoryDocumentation
	LinkCategoryPricing
	LinkCategoryBlog
	LinkCategorySocial
	LinkCategoryOther
)
