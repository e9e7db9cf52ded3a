package xcidr

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 地址解析模糊测试
// =============================================================================

func FuzzParseAddrRoundTrip(f *testing.F) {
	f.Add("0.0.0.0")
	f.Add("10.0.0.1")
	f.Add("192.168.1.101")
	f.Add("255.255.255.255")
	f.Add("1.2.3.256")
	f.Add("::1")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseAddr(s)
		if err != nil {
			return
		}
		// 渲染必须能被重新解析且稳定
		restored, err := ParseAddr(a.String())
		if err != nil {
			t.Fatalf("ParseAddr(%q) failed after render of %q: %v", a.String(), s, err)
		}
		if restored != a {
			t.Errorf("round-trip mismatch: %q → %v → %v", s, a, restored)
		}
	})
}

// ParseAddr 接受的输入 netip.ParseAddr 也必须接受且值一致。
func FuzzParseAddrAgreesWithNetip(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("010.0.0.1")
	f.Add("1.2.3.4.5")

	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseAddr(s)
		if err != nil {
			return
		}
		na, err := netip.ParseAddr(s)
		if err != nil {
			t.Fatalf("ParseAddr accepted %q but netip rejected it: %v", s, err)
		}
		if a.ToNetip().Compare(na) != 0 {
			t.Errorf("value mismatch for %q: xcidr=%v netip=%v", s, a.ToNetip(), na)
		}
	})
}

// =============================================================================
// CIDR 块模糊测试
// =============================================================================

func FuzzOfStringRoundTrip(f *testing.F) {
	f.Add("10.0.0.0/8")
	f.Add("192.168.1.101/24")
	f.Add("0.0.0.0/0")
	f.Add("255.255.255.255/32")
	f.Add("10.0.0.0/33")

	f.Fuzz(func(t *testing.T, s string) {
		b, err := OfString(s)
		if err != nil {
			return
		}
		// 归一化后的渲染是固定点
		restored, err := OfString(b.String())
		if err != nil {
			t.Fatalf("OfString(%q) failed after render of %q: %v", b.String(), s, err)
		}
		if restored != b {
			t.Errorf("round-trip mismatch: %q → %v → %v", s, b, restored)
		}
		if restored.String() != b.String() {
			t.Errorf("render not stable: %q vs %q", b.String(), restored.String())
		}
	})
}

func FuzzNewNormalizationInvariant(f *testing.F) {
	f.Add(uint32(0xc0a80165), 24)
	f.Add(uint32(0), 0)
	f.Add(uint32(0xffffffff), 32)

	f.Fuzz(func(t *testing.T, base uint32, bits int) {
		b, err := New(Addr(base), bits)
		if err != nil {
			if bits >= 0 && bits <= 32 {
				t.Fatalf("New rejected valid bits %d: %v", bits, err)
			}
			return
		}
		// 幂等：归一化结果再归一化不变
		again, err := New(b.Addr(), bits)
		if err != nil {
			t.Fatalf("New on normalized addr failed: %v", err)
		}
		if again != b {
			t.Errorf("normalization not idempotent: %v vs %v", b, again)
		}
		// 基地址必须匹配自身的块
		if !b.Match(b.Addr()) {
			t.Errorf("block %v does not match its own base", b)
		}
	})
}
