package drdump

// Keep these in sync with include/net/dropreason.h and
// include/net/dropreason-core.h in the kernel tree.
const (
	// CoreEnum is the mandatory enum holding the core drop reasons.
	CoreEnum = "skb_drop_reason"

	// SubsystemEnum lists the sub-systems able to register non-core
	// drop reasons.
	SubsystemEnum = "skb_drop_reason_subsys"

	// KnownSubsystems is the number of sub-systems we have built-in
	// support for (SKB_DROP_REASON_SUBSYS_NUM).
	KnownSubsystems = 5

	// SubsysMask is SKB_DROP_REASON_SUBSYS_MASK. It is part of
	// skb_drop_reason but is not a reason by itself.
	SubsysMask uint32 = 0xffff0000

	// SubsysShift is SKB_DROP_REASON_SUBSYS_SHIFT.
	SubsysShift = 16
)

// DefaultExtensions returns the known non-core drop reason enums in
// precedence order: for colliding values the earlier entry wins.
func DefaultExtensions() []string {
	return []string{"mac80211_drop_reason", "ovs_drop_reason"}
}

// SubsystemID returns the sub-system id encoded in a drop reason value.
func SubsystemID(code uint32) uint32 {
	return code >> SubsysShift
}
