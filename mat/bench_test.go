package mat_test

import (
	"testing"
)

func BenchmarkMatrix3_RightMul(b *testing.B) {
	m := invertible3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RightMul(m)
	}
}

func BenchmarkMatrix3_Inverse(b *testing.B) {
	m := invertible3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Inverse()
	}
}

func BenchmarkMatrix4_RightMul(b *testing.B) {
	m := dense4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RightMul(m)
	}
}

func BenchmarkMatrix4_Inverse(b *testing.B) {
	m := dense4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Inverse()
	}
}

func BenchmarkMatrix4_Pow(b *testing.B) {
	m := dense4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Pow(16)
	}
}

func BenchmarkMatrix4_Inverse_Real(b *testing.B) {
	m := dense4().Real()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Inverse()
	}
}
