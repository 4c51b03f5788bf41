// Copyright (c) 2023 - 2026 The dfu-go Authors.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result

import "github.com/dfu-go/dfu/lifecycle"

// Apply{n} is the {n}-ary applicative: if every input has at least a
// partial value, f runs on the unwrapped-or-partial values. The result is
// a full Success only if every input was a full Success; otherwise it is
// an Error carrying f's output as a partial, with the "; "-joined input
// messages. If any input lacks a result entirely, the whole application is
// an Error without a partial.
func Apply2[A1, A2, Out any](f func(A1, A2) Out, r1 Result[A1], r2 Result[A2]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply3[A1, A2, A3, Out any](f func(A1, A2, A3) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply4[A1, A2, A3, A4, Out any](f func(A1, A2, A3, A4) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply5[A1, A2, A3, A4, A5, Out any](f func(A1, A2, A3, A4, A5) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply6[A1, A2, A3, A4, A5, A6, Out any](f func(A1, A2, A3, A4, A5, A6) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply7[A1, A2, A3, A4, A5, A6, A7, Out any](f func(A1, A2, A3, A4, A5, A6, A7) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply8[A1, A2, A3, A4, A5, A6, A7, A8, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply9[A1, A2, A3, A4, A5, A6, A7, A8, A9, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11], r12 Result[A12]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11), entryOf(r12)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial(), r12.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply13[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11], r12 Result[A12], r13 Result[A13]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11), entryOf(r12), entryOf(r13)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial(), r12.UnwrapOrPartial(), r13.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply14[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11], r12 Result[A12], r13 Result[A13], r14 Result[A14]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11), entryOf(r12), entryOf(r13), entryOf(r14)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial(), r12.UnwrapOrPartial(), r13.UnwrapOrPartial(), r14.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply15[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11], r12 Result[A12], r13 Result[A13], r14 Result[A14], r15 Result[A15]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11), entryOf(r12), entryOf(r13), entryOf(r14), entryOf(r15)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial(), r12.UnwrapOrPartial(), r13.UnwrapOrPartial(), r14.UnwrapOrPartial(), r15.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

func Apply16[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16, Out any](f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, A13, A14, A15, A16) Out, r1 Result[A1], r2 Result[A2], r3 Result[A3], r4 Result[A4], r5 Result[A5], r6 Result[A6], r7 Result[A7], r8 Result[A8], r9 Result[A9], r10 Result[A10], r11 Result[A11], r12 Result[A12], r13 Result[A13], r14 Result[A14], r15 Result[A15], r16 Result[A16]) Result[Out] {
	m := combineMeta([]entryMeta{entryOf(r1), entryOf(r2), entryOf(r3), entryOf(r4), entryOf(r5), entryOf(r6), entryOf(r7), entryOf(r8), entryOf(r9), entryOf(r10), entryOf(r11), entryOf(r12), entryOf(r13), entryOf(r14), entryOf(r15), entryOf(r16)})
	if !m.hasAll {
		return Result[Out]{lifecycle: m.lifecycle, message: m.message}
	}
	out := f(r1.UnwrapOrPartial(), r2.UnwrapOrPartial(), r3.UnwrapOrPartial(), r4.UnwrapOrPartial(), r5.UnwrapOrPartial(), r6.UnwrapOrPartial(), r7.UnwrapOrPartial(), r8.UnwrapOrPartial(), r9.UnwrapOrPartial(), r10.UnwrapOrPartial(), r11.UnwrapOrPartial(), r12.UnwrapOrPartial(), r13.UnwrapOrPartial(), r14.UnwrapOrPartial(), r15.UnwrapOrPartial(), r16.UnwrapOrPartial())
	if m.allSuccess {
		return Result[Out]{isSuccess: true, result: out, hasResult: true, lifecycle: m.lifecycle}
	}
	return Result[Out]{result: out, hasResult: true, lifecycle: m.lifecycle, message: m.message}
}

// Apply2AndMakeStable behaves like Apply2 but always forces the resulting
// lifecycle to lifecycle.Stable, regardless of the inputs' lifecycles. It
// backs struct codecs whose schema the library author has pinned as
// stable even though its fields may individually be Experimental.
func Apply2AndMakeStable[A1, A2, Out any](f func(A1, A2) Out, r1 Result[A1], r2 Result[A2]) Result[Out] {
	r := Apply2(f, r1, r2)
	r.lifecycle = lifecycle.Stable
	return r
}
