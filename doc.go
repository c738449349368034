/*
Package lockbox defines all common interfaces that tie together the
subpackages of the conditional escrow ledger, as well as implementations
of some of the simpler components (when interfaces would be too much
overhead).

We pass request scope through context.Context between the router and the
handlers. Lockbox defines common keys to store info, such as the block
height and the block time. Each extension may add its own keys to enrich
the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package lockbox
