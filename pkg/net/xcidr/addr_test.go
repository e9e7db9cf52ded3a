package xcidr

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr bool
	}{
		{name: "zero", input: "0.0.0.0", want: 0},
		{name: "loopback", input: "127.0.0.1", want: 0x7f000001},
		{name: "private", input: "192.168.1.1", want: 0xc0a80101},
		{name: "broadcast", input: "255.255.255.255", want: 0xffffffff},
		{name: "octet out of range", input: "1.2.3.256", wantErr: true},
		{name: "too few octets", input: "1.2.3", wantErr: true},
		{name: "too many octets", input: "1.2.3.4.5", wantErr: true},
		{name: "empty octet", input: "1..3.4", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "leading zero octet", input: "010.0.0.1", wantErr: true},
		{name: "plus prefix", input: "1.2.3.+4", wantErr: true},
		{name: "whitespace", input: "1.2.3. 4", wantErr: true},
		{name: "ipv6", input: "::1", wantErr: true},
		{name: "hostname", input: "example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddr(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAddress))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Uint32())
		})
	}
}

func TestParseAddrErrorNamesOffender(t *testing.T) {
	_, err := ParseAddr("10.999.0.1")
	require.Error(t, err)
	// 错误信息必须同时包含违规八位段和原始字符串
	assert.Contains(t, err.Error(), `"999"`)
	assert.Contains(t, err.Error(), `"10.999.0.1"`)
}

func TestAddrString(t *testing.T) {
	assert.Equal(t, "0.0.0.0", Addr(0).String())
	assert.Equal(t, "255.255.255.255", maxAddr.String())
	assert.Equal(t, "10.34.67.1", MustParseAddr("10.34.67.1").String())
}

// 往返稳定性：to_string(of_string(s)) 在第二轮往返下不变。
func TestAddrRoundTripStable(t *testing.T) {
	for _, s := range []string{"0.0.0.0", "10.0.0.1", "192.168.1.101", "255.255.255.255"} {
		once := MustParseAddr(s).String()
		twice := MustParseAddr(once).String()
		assert.Equal(t, once, twice)
	}
}

func TestAddrOrdering(t *testing.T) {
	a := MustParseAddr("10.0.0.1")
	b := MustParseAddr("10.0.0.2")
	assert.Less(t, a, b)
	assert.Equal(t, a, MustParseAddr("10.0.0.1"))
}

func TestAddrNetipBridge(t *testing.T) {
	a := MustParseAddr("192.168.1.1")
	na := a.ToNetip()
	assert.Equal(t, "192.168.1.1", na.String())

	back, ok := AddrFromNetip(na)
	require.True(t, ok)
	assert.Equal(t, a, back)

	// IPv4-mapped IPv6 地址按纯 IPv4 处理
	mapped := netip.MustParseAddr("::ffff:10.0.0.1")
	got, ok := AddrFromNetip(mapped)
	require.True(t, ok)
	assert.Equal(t, MustParseAddr("10.0.0.1"), got)

	// 纯 IPv6 拒绝
	_, ok = AddrFromNetip(netip.MustParseAddr("2001:db8::1"))
	assert.False(t, ok)
}

func TestMustParseAddrPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseAddr("not-an-ip") })
}
