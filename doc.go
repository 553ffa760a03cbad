// Package drdump resolves kernel skb drop reasons from BTF.
//
// The kernel describes drop reasons with the skb_drop_reason enum and,
// optionally, per sub-system enums (mac80211, openvswitch, ...) whose
// values carry the sub-system id in their upper 16 bits. This package
// holds the tables built from those enums and the errors reported while
// building them; the reason package builds them and the render package
// turns them into text.
package drdump
