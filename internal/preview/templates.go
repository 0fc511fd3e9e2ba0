package preview

import (
	_ "embed"
)

//go:embed review.html
var reviewPanelHTML string
