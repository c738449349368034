/*

Package escrow implements a multi-asset conditional escrow.

Funds deposited into an escrow are held under a caller chosen id until the
arbiter acts. The arbiter can approve the escrow, which releases the full
balance to the recipient, or refund it. Approval is blocked once the escrow
passed its optional height or time deadline, refund is not. Anyone can top
up an open escrow with additional funds, no authorization required.

The engine never moves assets itself. Releasing an escrow removes the
record and returns the ordered transfer instructions the host environment
must carry out.

Note that refund pays out to the recipient, not back to the source. The
source address is recorded for informational purposes only.

*/
package escrow
