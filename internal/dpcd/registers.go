package dpcd

// Static DPCD register tables, following the register descriptions of the
// VESA DisplayPort standard. Addresses are byte addresses into the DPCD
// address space.

// ReceiverCapability covers the receiver capability field, 0x000-0x00e.
var ReceiverCapability = map[uint32]Register{
	0x000: {Name: "DP_DPCD_REV", Fields: []Field{
		{Name: "major", Mask: 0xf, Shift: 4},
		{Name: "minor", Mask: 0xf, Shift: 0},
	}},
	0x001: {Name: "MAX_LINK_RATE"},
	0x002: {Name: "MAX_LANE_COUNT", Fields: []Field{
		{Name: "enhanced frame cap", Mask: 0x1, Shift: 7},
		{Name: "TPS3 supported", Mask: 0x1, Shift: 6},
		{Name: "max lanes", Mask: 0x1f, Shift: 0},
	}},
	0x003: {Name: "MAX_DOWNSPREAD"},
	0x004: {Name: "NORP & DP_PWR_VOLTAGE_CAP", Fields: []Field{
		{Name: "18v_dp_pwr_cap", Mask: 0x1, Shift: 7},
		{Name: "12v_dp_pwr_cap", Mask: 0x1, Shift: 6},
		{Name: "5v_dp_pwr_cap", Mask: 0x1, Shift: 5},
		{Name: "#rx ports", Mask: 0xf, Shift: 0},
	}},
	0x005: {Name: "DOWNSTREAMPORT_PRESENT", Fields: []Field{
		{Name: "dwn_strm_port_type", Mask: 0x2, Shift: 1},
		{Name: "dwn_strm_port_present", Mask: 0x1, Shift: 0},
	}},
	0x006: {Name: "MAIN_LINK_CHANNEL_CODING", Fields: []Field{
		{Name: "ansi 8b/10b", Mask: 0x1, Shift: 0},
	}},
	0x007: {Name: "DOWN_STREAM_PORT_COUNT", Fields: []Field{
		{Name: "OUI Support", Mask: 0x1, Shift: 7},
		{Name: "msa_timing_par_ignored", Mask: 0x1, Shift: 6},
		{Name: "dwn_strm_port_count", Mask: 0xf, Shift: 0},
	}},
	0x008: {Name: "RECEIVE_PORT0_CAP_0", Fields: []Field{
		{Name: "associated_to_preceding_port", Mask: 0x1, Shift: 2},
		{Name: "local_edid_present", Mask: 0x1, Shift: 1},
	}},
	0x009: {Name: "RECEIVE_PORT0_CAP_1", Fields: []Field{
		{Name: "buffer_size", Mask: 0xff, Shift: 0},
	}},
	0x00a: {Name: "RECEIVE_PORT1_CAP_0", Fields: []Field{
		{Name: "associated_to_preceding_port", Mask: 0x1, Shift: 2},
		{Name: "local_edid_present", Mask: 0x1, Shift: 1},
	}},
	0x00b: {Name: "RECEIVE_PORT1_CAP_1", Fields: []Field{
		{Name: "buffer_size", Mask: 0xff, Shift: 0},
	}},
	0x00c: {Name: "I2C_SPEED_CONTROL"},
	0x00d: {Name: "eDP_CONFIGURATION_CAP", Fields: []Field{
		{Name: "framing_change_capable", Mask: 0x1, Shift: 1},
		{Name: "alternate_scrambler_reset_capable", Mask: 0x1, Shift: 0},
	}},
	0x00e: {Name: "TRAINING_AUX_RD_INTERVAL"},
}

// trainingLaneSet is shared by the four TRAINING_LANEx_SET registers.
var trainingLaneSet = []Field{
	{Name: "max pre-emphasis reached", Mask: 0x1, Shift: 5},
	{Name: "pre-emphasis", Mask: 0x3, Shift: 3},
	{Name: "max swing reached", Mask: 0x1, Shift: 2},
	{Name: "voltage swing", Mask: 0x3, Shift: 0},
}

// LinkConfiguration covers the link configuration field, 0x100-0x10a,
// written by the source during link training.
var LinkConfiguration = map[uint32]Register{
	0x100: {Name: "LINK_BW_SET"},
	0x101: {Name: "LANE_COUNT_SET", Fields: []Field{
		{Name: "enhanced frame en", Mask: 0x1, Shift: 7},
		{Name: "lane count", Mask: 0x1f, Shift: 0},
	}},
	0x102: {Name: "TRAINING_PATTERN_SET", Fields: []Field{
		{Name: "symbol error count sel", Mask: 0x3, Shift: 6},
		{Name: "scrambling disable", Mask: 0x1, Shift: 5},
		{Name: "recovered clock out en", Mask: 0x1, Shift: 4},
		{Name: "training pattern", Mask: 0x3, Shift: 0},
	}},
	0x103: {Name: "TRAINING_LANE0_SET", Fields: trainingLaneSet},
	0x104: {Name: "TRAINING_LANE1_SET", Fields: trainingLaneSet},
	0x105: {Name: "TRAINING_LANE2_SET", Fields: trainingLaneSet},
	0x106: {Name: "TRAINING_LANE3_SET", Fields: trainingLaneSet},
	0x107: {Name: "DOWNSPREAD_CTRL", Fields: []Field{
		{Name: "msa_timing_par_ignore_en", Mask: 0x1, Shift: 7},
		{Name: "spread amp", Mask: 0x1, Shift: 4},
	}},
	0x108: {Name: "MAIN_LINK_CHANNEL_CODING_SET", Fields: []Field{
		{Name: "set ansi 8b/10b", Mask: 0x1, Shift: 0},
	}},
	0x109: {Name: "I2C_SPEED_CONTROL_STATUS"},
	0x10a: {Name: "eDP_CONFIGURATION_SET", Fields: []Field{
		{Name: "panel self test enable", Mask: 0x1, Shift: 7},
		{Name: "framing change enable", Mask: 0x1, Shift: 1},
		{Name: "alternate scrambler reset enable", Mask: 0x1, Shift: 0},
	}},
}

// LinkSinkStatus covers the link and sink status field, 0x200-0x207,
// polled by the source to follow link training progress.
var LinkSinkStatus = map[uint32]Register{
	0x200: {Name: "SINK_COUNT", Fields: []Field{
		{Name: "cp ready", Mask: 0x1, Shift: 6},
		{Name: "sink count", Mask: 0x3f, Shift: 0},
	}},
	0x201: {Name: "DEVICE_SERVICE_IRQ_VECTOR", Fields: []Field{
		{Name: "sink specific irq", Mask: 0x1, Shift: 6},
		{Name: "up req msg rdy", Mask: 0x1, Shift: 5},
		{Name: "down rep msg rdy", Mask: 0x1, Shift: 4},
		{Name: "mccs irq", Mask: 0x1, Shift: 3},
		{Name: "cp irq", Mask: 0x1, Shift: 2},
		{Name: "automated test request", Mask: 0x1, Shift: 1},
		{Name: "remote control command pending", Mask: 0x1, Shift: 0},
	}},
	0x202: {Name: "LANE0_1_STATUS", Fields: []Field{
		{Name: "lane1 symbol locked", Mask: 0x1, Shift: 6},
		{Name: "lane1 channel eq done", Mask: 0x1, Shift: 5},
		{Name: "lane1 cr done", Mask: 0x1, Shift: 4},
		{Name: "lane0 symbol locked", Mask: 0x1, Shift: 2},
		{Name: "lane0 channel eq done", Mask: 0x1, Shift: 1},
		{Name: "lane0 cr done", Mask: 0x1, Shift: 0},
	}},
	0x203: {Name: "LANE2_3_STATUS", Fields: []Field{
		{Name: "lane3 symbol locked", Mask: 0x1, Shift: 6},
		{Name: "lane3 channel eq done", Mask: 0x1, Shift: 5},
		{Name: "lane3 cr done", Mask: 0x1, Shift: 4},
		{Name: "lane2 symbol locked", Mask: 0x1, Shift: 2},
		{Name: "lane2 channel eq done", Mask: 0x1, Shift: 1},
		{Name: "lane2 cr done", Mask: 0x1, Shift: 0},
	}},
	0x204: {Name: "LANE_ALIGN_STATUS_UPDATED", Fields: []Field{
		{Name: "link status updated", Mask: 0x1, Shift: 7},
		{Name: "downstream port status changed", Mask: 0x1, Shift: 6},
		{Name: "interlane align done", Mask: 0x1, Shift: 0},
	}},
	0x205: {Name: "SINK_STATUS", Fields: []Field{
		{Name: "receive port 1 status", Mask: 0x1, Shift: 1},
		{Name: "receive port 0 status", Mask: 0x1, Shift: 0},
	}},
	0x206: {Name: "ADJUST_REQUEST_LANE0_1", Fields: []Field{
		{Name: "lane1 pre-emphasis", Mask: 0x3, Shift: 6},
		{Name: "lane1 voltage swing", Mask: 0x3, Shift: 4},
		{Name: "lane0 pre-emphasis", Mask: 0x3, Shift: 2},
		{Name: "lane0 voltage swing", Mask: 0x3, Shift: 0},
	}},
	0x207: {Name: "ADJUST_REQUEST_LANE2_3", Fields: []Field{
		{Name: "lane3 pre-emphasis", Mask: 0x3, Shift: 6},
		{Name: "lane3 voltage swing", Mask: 0x3, Shift: 4},
		{Name: "lane2 pre-emphasis", Mask: 0x3, Shift: 2},
		{Name: "lane2 voltage swing", Mask: 0x3, Shift: 0},
	}},
}
