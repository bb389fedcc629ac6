// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package devicetype implements a conservative analysis that propagates the device placement of tensors through
// an ir.Graph.
//
// Propagate walks the graph once, in declaration order, and sets the device of tensor values it can infer:
//
//   - Operators with a statically known Device argument (e.g. "aten::to.device", or the "device" of factories)
//     place all their tensor outputs on that device.
//   - Other operators place their outputs on the device shared by their tensor inputs. Rank-0 tensors on CPU
//     are placeholders: they take the device of the other inputs. Any other disagreement leaves the outputs
//     with an unknown device.
//   - Outputs of conditionals are on the device of both branches, if they agree, or unknown otherwise.
//
// Loops and calls (KindLoop, KindCallMethod, KindCallFunction) are opaque: their outputs are not touched, and their
// blocks are not visited. Constants, list packing and unpacking, and other non-operator nodes are not handled
// either.
//
// Values whose device can't be inferred are set to an unknown device, never guessed. The pass only changes the
// device of tensor types, never the graph structure.
package devicetype
