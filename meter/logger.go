// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package meter

import (
	"fmt"

	"github.com/Fantom-foundation/Scarpia/scarpia"
)

// traceStep writes one diagnostic line for a successfully charged
// instruction to the configured trace writer, if any.
// Log format: <op>, <cost>, <gas-left>\n
// The output is purely informational; write errors are ignored.
func (c *Context) traceStep(op OpCode, cost scarpia.Gas) {
	if c.trace == nil {
		return
	}
	_, _ = c.trace.Write([]byte(fmt.Sprintf("%v, %d, %d\n", op, cost, c.gas)))
}
