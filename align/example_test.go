// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align_test

import (
	"fmt"

	"github.com/framegrace/elastic/align"
)

func ExampleAlign() {
	res, err := align.Align([]string{"x = 1\n", "longname = 2\n"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Text)
	// Output:
	// x        = 1
	// longname = 2
}
