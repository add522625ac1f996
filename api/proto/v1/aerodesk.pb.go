// Aerodesk wire contract.
//
// Go stubs are generated next to this file and are not committed:
//
//   protoc --go_out=. --go_opt=paths=source_relative \
//          --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//          api/proto/v1/aerodesk.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: api/proto/v1/aerodesk.proto

package aerodeskv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type EventType int32

const (
	EventType_EVENT_TYPE_UNSPECIFIED          EventType = 0
	EventType_EVENT_TYPE_COUNTERS_ASSIGNED    EventType = 1
	EventType_EVENT_TYPE_COUNTERS_FREED       EventType = 2
	EventType_EVENT_TYPE_ASSIGNMENT_QUEUED    EventType = 3
	EventType_EVENT_TYPE_QUEUE_MOVED          EventType = 4
	EventType_EVENT_TYPE_PASSENGER_ARRIVED    EventType = 5
	EventType_EVENT_TYPE_PASSENGER_CHECKED_IN EventType = 6
)

// Enum value maps for EventType.
var (
	EventType_name = map[int32]string{
		0: "EVENT_TYPE_UNSPECIFIED",
		1: "EVENT_TYPE_COUNTERS_ASSIGNED",
		2: "EVENT_TYPE_COUNTERS_FREED",
		3: "EVENT_TYPE_ASSIGNMENT_QUEUED",
		4: "EVENT_TYPE_QUEUE_MOVED",
		5: "EVENT_TYPE_PASSENGER_ARRIVED",
		6: "EVENT_TYPE_PASSENGER_CHECKED_IN",
	}
	EventType_value = map[string]int32{
		"EVENT_TYPE_UNSPECIFIED":          0,
		"EVENT_TYPE_COUNTERS_ASSIGNED":    1,
		"EVENT_TYPE_COUNTERS_FREED":       2,
		"EVENT_TYPE_ASSIGNMENT_QUEUED":    3,
		"EVENT_TYPE_QUEUE_MOVED":          4,
		"EVENT_TYPE_PASSENGER_ARRIVED":    5,
		"EVENT_TYPE_PASSENGER_CHECKED_IN": 6,
	}
)

func (x EventType) Enum() *EventType {
	p := new(EventType)
	*p = x
	return p
}

func (x EventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EventType) Descriptor() protoreflect.EnumDescriptor {
	return file_api_proto_v1_aerodesk_proto_enumTypes[0].Descriptor()
}

func (EventType) Type() protoreflect.EnumType {
	return &file_api_proto_v1_aerodesk_proto_enumTypes[0]
}

func (x EventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EventType.Descriptor instead.
func (EventType) EnumDescriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{0}
}

// Range is an inclusive [from, to] interval of counter ids.
type Range struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	From int32 `protobuf:"varint,1,opt,name=from,proto3" json:"from,omitempty"`
	To   int32 `protobuf:"varint,2,opt,name=to,proto3" json:"to,omitempty"`
}

func (x *Range) Reset() {
	*x = Range{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Range) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Range) ProtoMessage() {}

func (x *Range) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Range.ProtoReflect.Descriptor instead.
func (*Range) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{0}
}

func (x *Range) GetFrom() int32 {
	if x != nil {
		return x.From
	}
	return 0
}

func (x *Range) GetTo() int32 {
	if x != nil {
		return x.To
	}
	return 0
}

type AssignedInfo struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Airline           string   `protobuf:"bytes,1,opt,name=airline,proto3" json:"airline,omitempty"`
	Flights           []string `protobuf:"bytes,2,rep,name=flights,proto3" json:"flights,omitempty"`
	PassengersInQueue int32    `protobuf:"varint,3,opt,name=passengers_in_queue,json=passengersInQueue,proto3" json:"passengers_in_queue,omitempty"`
}

func (x *AssignedInfo) Reset() {
	*x = AssignedInfo{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AssignedInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignedInfo) ProtoMessage() {}

func (x *AssignedInfo) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignedInfo.ProtoReflect.Descriptor instead.
func (*AssignedInfo) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{1}
}

func (x *AssignedInfo) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *AssignedInfo) GetFlights() []string {
	if x != nil {
		return x.Flights
	}
	return nil
}

func (x *AssignedInfo) GetPassengersInQueue() int32 {
	if x != nil {
		return x.PassengersInQueue
	}
	return 0
}

// CounterRange is a contiguous counter block; assigned is unset for a free
// block.
type CounterRange struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Range    *Range        `protobuf:"bytes,1,opt,name=range,proto3" json:"range,omitempty"`
	Assigned *AssignedInfo `protobuf:"bytes,2,opt,name=assigned,proto3" json:"assigned,omitempty"`
}

func (x *CounterRange) Reset() {
	*x = CounterRange{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CounterRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CounterRange) ProtoMessage() {}

func (x *CounterRange) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CounterRange.ProtoReflect.Descriptor instead.
func (*CounterRange) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{2}
}

func (x *CounterRange) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

func (x *CounterRange) GetAssigned() *AssignedInfo {
	if x != nil {
		return x.Assigned
	}
	return nil
}

type Sector struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name     string          `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Counters []*CounterRange `protobuf:"bytes,2,rep,name=counters,proto3" json:"counters,omitempty"`
}

func (x *Sector) Reset() {
	*x = Sector{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Sector) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Sector) ProtoMessage() {}

func (x *Sector) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Sector.ProtoReflect.Descriptor instead.
func (*Sector) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{3}
}

func (x *Sector) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Sector) GetCounters() []*CounterRange {
	if x != nil {
		return x.Counters
	}
	return nil
}

type PendingAssignment struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Airline string   `protobuf:"bytes,1,opt,name=airline,proto3" json:"airline,omitempty"`
	Flights []string `protobuf:"bytes,2,rep,name=flights,proto3" json:"flights,omitempty"`
	Count   int32    `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
}

func (x *PendingAssignment) Reset() {
	*x = PendingAssignment{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PendingAssignment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingAssignment) ProtoMessage() {}

func (x *PendingAssignment) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingAssignment.ProtoReflect.Descriptor instead.
func (*PendingAssignment) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{4}
}

func (x *PendingAssignment) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *PendingAssignment) GetFlights() []string {
	if x != nil {
		return x.Flights
	}
	return nil
}

func (x *PendingAssignment) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type Passenger struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Booking string `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
	Flight  string `protobuf:"bytes,2,opt,name=flight,proto3" json:"flight,omitempty"`
	Airline string `protobuf:"bytes,3,opt,name=airline,proto3" json:"airline,omitempty"`
}

func (x *Passenger) Reset() {
	*x = Passenger{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Passenger) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Passenger) ProtoMessage() {}

func (x *Passenger) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Passenger.ProtoReflect.Descriptor instead.
func (*Passenger) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{5}
}

func (x *Passenger) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

func (x *Passenger) GetFlight() string {
	if x != nil {
		return x.Flight
	}
	return ""
}

func (x *Passenger) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

type Checkin struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sector  string `protobuf:"bytes,1,opt,name=sector,proto3" json:"sector,omitempty"`
	Counter int32  `protobuf:"varint,2,opt,name=counter,proto3" json:"counter,omitempty"`
	Airline string `protobuf:"bytes,3,opt,name=airline,proto3" json:"airline,omitempty"`
	Flight  string `protobuf:"bytes,4,opt,name=flight,proto3" json:"flight,omitempty"`
	Booking string `protobuf:"bytes,5,opt,name=booking,proto3" json:"booking,omitempty"`
}

func (x *Checkin) Reset() {
	*x = Checkin{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Checkin) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Checkin) ProtoMessage() {}

func (x *Checkin) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Checkin.ProtoReflect.Descriptor instead.
func (*Checkin) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{6}
}

func (x *Checkin) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *Checkin) GetCounter() int32 {
	if x != nil {
		return x.Counter
	}
	return 0
}

func (x *Checkin) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *Checkin) GetFlight() string {
	if x != nil {
		return x.Flight
	}
	return ""
}

func (x *Checkin) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

type Event struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Type              EventType `protobuf:"varint,1,opt,name=type,proto3,enum=aerodesk.v1.EventType" json:"type,omitempty"`
	Airline           string    `protobuf:"bytes,2,opt,name=airline,proto3" json:"airline,omitempty"`
	Sector            string    `protobuf:"bytes,3,opt,name=sector,proto3" json:"sector,omitempty"`
	Range             *Range    `protobuf:"bytes,4,opt,name=range,proto3" json:"range,omitempty"`
	Flights           []string  `protobuf:"bytes,5,rep,name=flights,proto3" json:"flights,omitempty"`
	Booking           string    `protobuf:"bytes,6,opt,name=booking,proto3" json:"booking,omitempty"`
	QueuePosition     int32     `protobuf:"varint,7,opt,name=queue_position,json=queuePosition,proto3" json:"queue_position,omitempty"`
	PassengersInQueue int32     `protobuf:"varint,8,opt,name=passengers_in_queue,json=passengersInQueue,proto3" json:"passengers_in_queue,omitempty"`
}

func (x *Event) Reset() {
	*x = Event{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{7}
}

func (x *Event) GetType() EventType {
	if x != nil {
		return x.Type
	}
	return EventType_EVENT_TYPE_UNSPECIFIED
}

func (x *Event) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *Event) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *Event) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

func (x *Event) GetFlights() []string {
	if x != nil {
		return x.Flights
	}
	return nil
}

func (x *Event) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

func (x *Event) GetQueuePosition() int32 {
	if x != nil {
		return x.QueuePosition
	}
	return 0
}

func (x *Event) GetPassengersInQueue() int32 {
	if x != nil {
		return x.PassengersInQueue
	}
	return 0
}

type AddSectorRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *AddSectorRequest) Reset() {
	*x = AddSectorRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddSectorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddSectorRequest) ProtoMessage() {}

func (x *AddSectorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddSectorRequest.ProtoReflect.Descriptor instead.
func (*AddSectorRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{8}
}

func (x *AddSectorRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type AddSectorResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *AddSectorResponse) Reset() {
	*x = AddSectorResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddSectorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddSectorResponse) ProtoMessage() {}

func (x *AddSectorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddSectorResponse.ProtoReflect.Descriptor instead.
func (*AddSectorResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{9}
}

type AddCountersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sector string `protobuf:"bytes,1,opt,name=sector,proto3" json:"sector,omitempty"`
	Count  int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (x *AddCountersRequest) Reset() {
	*x = AddCountersRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddCountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCountersRequest) ProtoMessage() {}

func (x *AddCountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCountersRequest.ProtoReflect.Descriptor instead.
func (*AddCountersRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{10}
}

func (x *AddCountersRequest) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *AddCountersRequest) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type AddCountersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Range *Range `protobuf:"bytes,1,opt,name=range,proto3" json:"range,omitempty"`
}

func (x *AddCountersResponse) Reset() {
	*x = AddCountersResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddCountersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCountersResponse) ProtoMessage() {}

func (x *AddCountersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCountersResponse.ProtoReflect.Descriptor instead.
func (*AddCountersResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{11}
}

func (x *AddCountersResponse) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

type AddPassengerRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Passenger *Passenger `protobuf:"bytes,1,opt,name=passenger,proto3" json:"passenger,omitempty"`
}

func (x *AddPassengerRequest) Reset() {
	*x = AddPassengerRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddPassengerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddPassengerRequest) ProtoMessage() {}

func (x *AddPassengerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddPassengerRequest.ProtoReflect.Descriptor instead.
func (*AddPassengerRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{12}
}

func (x *AddPassengerRequest) GetPassenger() *Passenger {
	if x != nil {
		return x.Passenger
	}
	return nil
}

type AddPassengerResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *AddPassengerResponse) Reset() {
	*x = AddPassengerResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AddPassengerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddPassengerResponse) ProtoMessage() {}

func (x *AddPassengerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddPassengerResponse.ProtoReflect.Descriptor instead.
func (*AddPassengerResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{13}
}

type ListSectorsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListSectorsRequest) Reset() {
	*x = ListSectorsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListSectorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectorsRequest) ProtoMessage() {}

func (x *ListSectorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectorsRequest.ProtoReflect.Descriptor instead.
func (*ListSectorsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{14}
}

// SectorSummary carries the display form of a sector: its disjoint counter
// spans coalesced into the minimal covering list.
type SectorSummary struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name         string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	MergedRanges []*Range `protobuf:"bytes,2,rep,name=merged_ranges,json=mergedRanges,proto3" json:"merged_ranges,omitempty"`
	CounterCount int32    `protobuf:"varint,3,opt,name=counter_count,json=counterCount,proto3" json:"counter_count,omitempty"`
}

func (x *SectorSummary) Reset() {
	*x = SectorSummary{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SectorSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SectorSummary) ProtoMessage() {}

func (x *SectorSummary) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SectorSummary.ProtoReflect.Descriptor instead.
func (*SectorSummary) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{15}
}

func (x *SectorSummary) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SectorSummary) GetMergedRanges() []*Range {
	if x != nil {
		return x.MergedRanges
	}
	return nil
}

func (x *SectorSummary) GetCounterCount() int32 {
	if x != nil {
		return x.CounterCount
	}
	return 0
}

type ListSectorsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sectors []*SectorSummary `protobuf:"bytes,1,rep,name=sectors,proto3" json:"sectors,omitempty"`
}

func (x *ListSectorsResponse) Reset() {
	*x = ListSectorsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListSectorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectorsResponse) ProtoMessage() {}

func (x *ListSectorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectorsResponse.ProtoReflect.Descriptor instead.
func (*ListSectorsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{16}
}

func (x *ListSectorsResponse) GetSectors() []*SectorSummary {
	if x != nil {
		return x.Sectors
	}
	return nil
}

type AssignCountersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sector  string   `protobuf:"bytes,1,opt,name=sector,proto3" json:"sector,omitempty"`
	Airline string   `protobuf:"bytes,2,opt,name=airline,proto3" json:"airline,omitempty"`
	Flights []string `protobuf:"bytes,3,rep,name=flights,proto3" json:"flights,omitempty"`
	Count   int32    `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
}

func (x *AssignCountersRequest) Reset() {
	*x = AssignCountersRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AssignCountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignCountersRequest) ProtoMessage() {}

func (x *AssignCountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignCountersRequest.ProtoReflect.Descriptor instead.
func (*AssignCountersRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{17}
}

func (x *AssignCountersRequest) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *AssignCountersRequest) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *AssignCountersRequest) GetFlights() []string {
	if x != nil {
		return x.Flights
	}
	return nil
}

func (x *AssignCountersRequest) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type AssignCountersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// range is set iff the request was satisfied immediately.
	Range         *Range `protobuf:"bytes,1,opt,name=range,proto3" json:"range,omitempty"`
	Queued        bool   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	QueuePosition int32  `protobuf:"varint,3,opt,name=queue_position,json=queuePosition,proto3" json:"queue_position,omitempty"`
}

func (x *AssignCountersResponse) Reset() {
	*x = AssignCountersResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[18]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AssignCountersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignCountersResponse) ProtoMessage() {}

func (x *AssignCountersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[18]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignCountersResponse.ProtoReflect.Descriptor instead.
func (*AssignCountersResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{18}
}

func (x *AssignCountersResponse) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

func (x *AssignCountersResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *AssignCountersResponse) GetQueuePosition() int32 {
	if x != nil {
		return x.QueuePosition
	}
	return 0
}

type FreeCountersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sector      string `protobuf:"bytes,1,opt,name=sector,proto3" json:"sector,omitempty"`
	CounterFrom int32  `protobuf:"varint,2,opt,name=counter_from,json=counterFrom,proto3" json:"counter_from,omitempty"`
	Airline     string `protobuf:"bytes,3,opt,name=airline,proto3" json:"airline,omitempty"`
}

func (x *FreeCountersRequest) Reset() {
	*x = FreeCountersRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[19]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FreeCountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FreeCountersRequest) ProtoMessage() {}

func (x *FreeCountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[19]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FreeCountersRequest.ProtoReflect.Descriptor instead.
func (*FreeCountersRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{19}
}

func (x *FreeCountersRequest) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *FreeCountersRequest) GetCounterFrom() int32 {
	if x != nil {
		return x.CounterFrom
	}
	return 0
}

func (x *FreeCountersRequest) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

type FreeCountersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// freed is the counter range as it was immediately before being freed.
	Freed *CounterRange `protobuf:"bytes,1,opt,name=freed,proto3" json:"freed,omitempty"`
}

func (x *FreeCountersResponse) Reset() {
	*x = FreeCountersResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[20]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FreeCountersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FreeCountersResponse) ProtoMessage() {}

func (x *FreeCountersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[20]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FreeCountersResponse.ProtoReflect.Descriptor instead.
func (*FreeCountersResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{20}
}

func (x *FreeCountersResponse) GetFreed() *CounterRange {
	if x != nil {
		return x.Freed
	}
	return nil
}

type ListPendingAssignmentsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sector string `protobuf:"bytes,1,opt,name=sector,proto3" json:"sector,omitempty"`
}

func (x *ListPendingAssignmentsRequest) Reset() {
	*x = ListPendingAssignmentsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[21]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPendingAssignmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingAssignmentsRequest) ProtoMessage() {}

func (x *ListPendingAssignmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[21]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingAssignmentsRequest.ProtoReflect.Descriptor instead.
func (*ListPendingAssignmentsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{21}
}

func (x *ListPendingAssignmentsRequest) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

type ListPendingAssignmentsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Assignments []*PendingAssignment `protobuf:"bytes,1,rep,name=assignments,proto3" json:"assignments,omitempty"`
}

func (x *ListPendingAssignmentsResponse) Reset() {
	*x = ListPendingAssignmentsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[22]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPendingAssignmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingAssignmentsResponse) ProtoMessage() {}

func (x *ListPendingAssignmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[22]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingAssignmentsResponse.ProtoReflect.Descriptor instead.
func (*ListPendingAssignmentsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{22}
}

func (x *ListPendingAssignmentsResponse) GetAssignments() []*PendingAssignment {
	if x != nil {
		return x.Assignments
	}
	return nil
}

type FetchCounterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Booking string `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
}

func (x *FetchCounterRequest) Reset() {
	*x = FetchCounterRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[23]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FetchCounterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchCounterRequest) ProtoMessage() {}

func (x *FetchCounterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[23]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchCounterRequest.ProtoReflect.Descriptor instead.
func (*FetchCounterRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{23}
}

func (x *FetchCounterRequest) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

type FetchCounterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Flight  string `protobuf:"bytes,1,opt,name=flight,proto3" json:"flight,omitempty"`
	Airline string `protobuf:"bytes,2,opt,name=airline,proto3" json:"airline,omitempty"`
	// sector and range are set iff the flight currently has counters.
	HasCounters bool   `protobuf:"varint,3,opt,name=has_counters,json=hasCounters,proto3" json:"has_counters,omitempty"`
	Sector      string `protobuf:"bytes,4,opt,name=sector,proto3" json:"sector,omitempty"`
	Range       *Range `protobuf:"bytes,5,opt,name=range,proto3" json:"range,omitempty"`
}

func (x *FetchCounterResponse) Reset() {
	*x = FetchCounterResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[24]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FetchCounterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FetchCounterResponse) ProtoMessage() {}

func (x *FetchCounterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[24]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FetchCounterResponse.ProtoReflect.Descriptor instead.
func (*FetchCounterResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{24}
}

func (x *FetchCounterResponse) GetFlight() string {
	if x != nil {
		return x.Flight
	}
	return ""
}

func (x *FetchCounterResponse) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *FetchCounterResponse) GetHasCounters() bool {
	if x != nil {
		return x.HasCounters
	}
	return false
}

func (x *FetchCounterResponse) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *FetchCounterResponse) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

type CheckInRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Booking string `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
}

func (x *CheckInRequest) Reset() {
	*x = CheckInRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[25]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckInRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckInRequest) ProtoMessage() {}

func (x *CheckInRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[25]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckInRequest.ProtoReflect.Descriptor instead.
func (*CheckInRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{25}
}

func (x *CheckInRequest) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

type CheckInResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Checkin           *Checkin `protobuf:"bytes,1,opt,name=checkin,proto3" json:"checkin,omitempty"`
	PassengersInQueue int32    `protobuf:"varint,2,opt,name=passengers_in_queue,json=passengersInQueue,proto3" json:"passengers_in_queue,omitempty"`
}

func (x *CheckInResponse) Reset() {
	*x = CheckInResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[26]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckInResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckInResponse) ProtoMessage() {}

func (x *CheckInResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[26]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckInResponse.ProtoReflect.Descriptor instead.
func (*CheckInResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{26}
}

func (x *CheckInResponse) GetCheckin() *Checkin {
	if x != nil {
		return x.Checkin
	}
	return nil
}

func (x *CheckInResponse) GetPassengersInQueue() int32 {
	if x != nil {
		return x.PassengersInQueue
	}
	return 0
}

type PassengerStatusRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Booking string `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
}

func (x *PassengerStatusRequest) Reset() {
	*x = PassengerStatusRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[27]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PassengerStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PassengerStatusRequest) ProtoMessage() {}

func (x *PassengerStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[27]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PassengerStatusRequest.ProtoReflect.Descriptor instead.
func (*PassengerStatusRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{27}
}

func (x *PassengerStatusRequest) GetBooking() string {
	if x != nil {
		return x.Booking
	}
	return ""
}

type PassengerStatusResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Passenger   *Passenger `protobuf:"bytes,1,opt,name=passenger,proto3" json:"passenger,omitempty"`
	CheckedIn   bool       `protobuf:"varint,2,opt,name=checked_in,json=checkedIn,proto3" json:"checked_in,omitempty"`
	Checkin     *Checkin   `protobuf:"bytes,3,opt,name=checkin,proto3" json:"checkin,omitempty"`
	HasCounters bool       `protobuf:"varint,4,opt,name=has_counters,json=hasCounters,proto3" json:"has_counters,omitempty"`
	Sector      string     `protobuf:"bytes,5,opt,name=sector,proto3" json:"sector,omitempty"`
	Range       *Range     `protobuf:"bytes,6,opt,name=range,proto3" json:"range,omitempty"`
}

func (x *PassengerStatusResponse) Reset() {
	*x = PassengerStatusResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[28]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PassengerStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PassengerStatusResponse) ProtoMessage() {}

func (x *PassengerStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[28]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PassengerStatusResponse.ProtoReflect.Descriptor instead.
func (*PassengerStatusResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{28}
}

func (x *PassengerStatusResponse) GetPassenger() *Passenger {
	if x != nil {
		return x.Passenger
	}
	return nil
}

func (x *PassengerStatusResponse) GetCheckedIn() bool {
	if x != nil {
		return x.CheckedIn
	}
	return false
}

func (x *PassengerStatusResponse) GetCheckin() *Checkin {
	if x != nil {
		return x.Checkin
	}
	return nil
}

func (x *PassengerStatusResponse) GetHasCounters() bool {
	if x != nil {
		return x.HasCounters
	}
	return false
}

func (x *PassengerStatusResponse) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

func (x *PassengerStatusResponse) GetRange() *Range {
	if x != nil {
		return x.Range
	}
	return nil
}

type SubscribeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Airline string `protobuf:"bytes,1,opt,name=airline,proto3" json:"airline,omitempty"`
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[29]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[29]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeRequest.ProtoReflect.Descriptor instead.
func (*SubscribeRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{29}
}

func (x *SubscribeRequest) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

type UnsubscribeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Airline string `protobuf:"bytes,1,opt,name=airline,proto3" json:"airline,omitempty"`
}

func (x *UnsubscribeRequest) Reset() {
	*x = UnsubscribeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[30]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UnsubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnsubscribeRequest) ProtoMessage() {}

func (x *UnsubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[30]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnsubscribeRequest.ProtoReflect.Descriptor instead.
func (*UnsubscribeRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{30}
}

func (x *UnsubscribeRequest) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

type UnsubscribeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *UnsubscribeResponse) Reset() {
	*x = UnsubscribeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[31]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UnsubscribeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnsubscribeResponse) ProtoMessage() {}

func (x *UnsubscribeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[31]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnsubscribeResponse.ProtoReflect.Descriptor instead.
func (*UnsubscribeResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{31}
}

type CheckinsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Empty fields match everything.
	Airline string `protobuf:"bytes,1,opt,name=airline,proto3" json:"airline,omitempty"`
	Flight  string `protobuf:"bytes,2,opt,name=flight,proto3" json:"flight,omitempty"`
	Sector  string `protobuf:"bytes,3,opt,name=sector,proto3" json:"sector,omitempty"`
}

func (x *CheckinsRequest) Reset() {
	*x = CheckinsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[32]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckinsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckinsRequest) ProtoMessage() {}

func (x *CheckinsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[32]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckinsRequest.ProtoReflect.Descriptor instead.
func (*CheckinsRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{32}
}

func (x *CheckinsRequest) GetAirline() string {
	if x != nil {
		return x.Airline
	}
	return ""
}

func (x *CheckinsRequest) GetFlight() string {
	if x != nil {
		return x.Flight
	}
	return ""
}

func (x *CheckinsRequest) GetSector() string {
	if x != nil {
		return x.Sector
	}
	return ""
}

type CheckinsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Checkins []*Checkin `protobuf:"bytes,1,rep,name=checkins,proto3" json:"checkins,omitempty"`
}

func (x *CheckinsResponse) Reset() {
	*x = CheckinsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[33]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckinsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckinsResponse) ProtoMessage() {}

func (x *CheckinsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[33]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckinsResponse.ProtoReflect.Descriptor instead.
func (*CheckinsResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{33}
}

func (x *CheckinsResponse) GetCheckins() []*Checkin {
	if x != nil {
		return x.Checkins
	}
	return nil
}

type CountersRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *CountersRequest) Reset() {
	*x = CountersRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[34]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CountersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountersRequest) ProtoMessage() {}

func (x *CountersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[34]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountersRequest.ProtoReflect.Descriptor instead.
func (*CountersRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{34}
}

type CountersResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Sectors []*Sector `protobuf:"bytes,1,rep,name=sectors,proto3" json:"sectors,omitempty"`
}

func (x *CountersResponse) Reset() {
	*x = CountersResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_api_proto_v1_aerodesk_proto_msgTypes[35]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CountersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountersResponse) ProtoMessage() {}

func (x *CountersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_v1_aerodesk_proto_msgTypes[35]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountersResponse.ProtoReflect.Descriptor instead.
func (*CountersResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_v1_aerodesk_proto_rawDescGZIP(), []int{35}
}

func (x *CountersResponse) GetSectors() []*Sector {
	if x != nil {
		return x.Sectors
	}
	return nil
}

var File_api_proto_v1_aerodesk_proto protoreflect.FileDescriptor

var file_api_proto_v1_aerodesk_proto_rawDesc = []byte{
	0x0a, 0x1b, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x76, 0x31, 0x2f, 0x61,
	0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0b, 0x61,
	0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x22, 0x2b, 0x0a, 0x05, 0x52, 0x61,
	0x6e, 0x67, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x04, 0x66, 0x72, 0x6f, 0x6d, 0x12, 0x0e, 0x0a, 0x02, 0x74, 0x6f, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x02, 0x74, 0x6f, 0x22, 0x72, 0x0a, 0x0c, 0x41, 0x73, 0x73, 0x69, 0x67,
	0x6e, 0x65, 0x64, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69,
	0x6e, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e,
	0x65, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x02, 0x20, 0x03,
	0x28, 0x09, 0x52, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x70,
	0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x73, 0x5f, 0x69, 0x6e, 0x5f, 0x71, 0x75, 0x65,
	0x75, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x11, 0x70, 0x61, 0x73, 0x73, 0x65, 0x6e,
	0x67, 0x65, 0x72, 0x73, 0x49, 0x6e, 0x51, 0x75, 0x65, 0x75, 0x65, 0x22, 0x6f, 0x0a, 0x0c, 0x43,
	0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x28, 0x0a, 0x05, 0x72,
	0x61, 0x6e, 0x67, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72,
	0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x61, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x65,
	0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65,
	0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x65, 0x64, 0x49, 0x6e,
	0x66, 0x6f, 0x52, 0x08, 0x61, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x65, 0x64, 0x22, 0x53, 0x0a, 0x06,
	0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x61,
	0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x75, 0x6e, 0x74,
	0x65, 0x72, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x08, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72,
	0x73, 0x22, 0x5d, 0x0a, 0x11, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x69,
	0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65,
	0x12, 0x18, 0x0a, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28,
	0x09, 0x52, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x22, 0x57, 0x0a, 0x09, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x12, 0x18, 0x0a,
	0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07,
	0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x12, 0x16, 0x0a, 0x06, 0x66, 0x6c, 0x69, 0x67, 0x68,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x12,
	0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x22, 0x87, 0x01, 0x0a, 0x07, 0x43, 0x68,
	0x65, 0x63, 0x6b, 0x69, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x18, 0x0a,
	0x07, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x07,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69,
	0x6e, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e,
	0x65, 0x12, 0x16, 0x0a, 0x06, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x6f, 0x6f,
	0x6b, 0x69, 0x6e, 0x67, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x6f, 0x6f, 0x6b,
	0x69, 0x6e, 0x67, 0x22, 0x9a, 0x02, 0x0a, 0x05, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x2a, 0x0a,
	0x04, 0x74, 0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x16, 0x2e, 0x61, 0x65,
	0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x54,
	0x79, 0x70, 0x65, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72,
	0x6c, 0x69, 0x6e, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c,
	0x69, 0x6e, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x28, 0x0a, 0x05, 0x72,
	0x61, 0x6e, 0x67, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72,
	0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05,
	0x72, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73,
	0x18, 0x05, 0x20, 0x03, 0x28, 0x09, 0x52, 0x07, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x12,
	0x18, 0x0a, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x12, 0x25, 0x0a, 0x0e, 0x71, 0x75, 0x65,
	0x75, 0x65, 0x5f, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x07, 0x20, 0x01, 0x28,
	0x05, 0x52, 0x0d, 0x71, 0x75, 0x65, 0x75, 0x65, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e,
	0x12, 0x2e, 0x0a, 0x13, 0x70, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x73, 0x5f, 0x69,
	0x6e, 0x5f, 0x71, 0x75, 0x65, 0x75, 0x65, 0x18, 0x08, 0x20, 0x01, 0x28, 0x05, 0x52, 0x11, 0x70,
	0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x73, 0x49, 0x6e, 0x51, 0x75, 0x65, 0x75, 0x65,
	0x22, 0x26, 0x0a, 0x10, 0x41, 0x64, 0x64, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x22, 0x13, 0x0a, 0x11, 0x41, 0x64, 0x64, 0x53,
	0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x42, 0x0a,
	0x12, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x14, 0x0a, 0x05, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x22, 0x3f, 0x0a, 0x13, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x28, 0x0a, 0x05, 0x72, 0x61, 0x6e, 0x67,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65,
	0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05, 0x72, 0x61, 0x6e,
	0x67, 0x65, 0x22, 0x4b, 0x0a, 0x13, 0x41, 0x64, 0x64, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67,
	0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x34, 0x0a, 0x09, 0x70, 0x61, 0x73,
	0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x61,
	0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x73, 0x73, 0x65,
	0x6e, 0x67, 0x65, 0x72, 0x52, 0x09, 0x70, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x22,
	0x16, 0x0a, 0x14, 0x41, 0x64, 0x64, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x14, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74, 0x53,
	0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x81, 0x01,
	0x0a, 0x0d, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x12,
	0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e,
	0x61, 0x6d, 0x65, 0x12, 0x37, 0x0a, 0x0d, 0x6d, 0x65, 0x72, 0x67, 0x65, 0x64, 0x5f, 0x72, 0x61,
	0x6e, 0x67, 0x65, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72,
	0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x0c,
	0x6d, 0x65, 0x72, 0x67, 0x65, 0x64, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x73, 0x12, 0x23, 0x0a, 0x0d,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0c, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x43, 0x6f, 0x75, 0x6e,
	0x74, 0x22, 0x4b, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x34, 0x0a, 0x07, 0x73, 0x65, 0x63, 0x74,
	0x6f, 0x72, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x61, 0x65, 0x72, 0x6f,
	0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x53, 0x75,
	0x6d, 0x6d, 0x61, 0x72, 0x79, 0x52, 0x07, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x22, 0x79,
	0x0a, 0x15, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f,
	0x72, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12,
	0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x66, 0x6c, 0x69,
	0x67, 0x68, 0x74, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x09, 0x52, 0x07, 0x66, 0x6c, 0x69, 0x67,
	0x68, 0x74, 0x73, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x81, 0x01, 0x0a, 0x16, 0x41, 0x73,
	0x73, 0x69, 0x67, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x28, 0x0a, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76,
	0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x12, 0x16,
	0x0a, 0x06, 0x71, 0x75, 0x65, 0x75, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06,
	0x71, 0x75, 0x65, 0x75, 0x65, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x71, 0x75, 0x65, 0x75, 0x65, 0x5f,
	0x70, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0d,
	0x71, 0x75, 0x65, 0x75, 0x65, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x22, 0x6a, 0x0a,
	0x13, 0x46, 0x72, 0x65, 0x65, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x21, 0x0a, 0x0c,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x5f, 0x66, 0x72, 0x6f, 0x6d, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x0b, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x46, 0x72, 0x6f, 0x6d, 0x12,
	0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x22, 0x47, 0x0a, 0x14, 0x46, 0x72, 0x65,
	0x65, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x2f, 0x0a, 0x05, 0x66, 0x72, 0x65, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x19, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05, 0x66, 0x72, 0x65,
	0x65, 0x64, 0x22, 0x37, 0x0a, 0x1d, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e,
	0x67, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x22, 0x62, 0x0a, 0x1e, 0x4c,
	0x69, 0x73, 0x74, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e,
	0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x40, 0x0a,
	0x0b, 0x61, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x1e, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65,
	0x6e, 0x74, 0x52, 0x0b, 0x61, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x22,
	0x2f, 0x0a, 0x13, 0x46, 0x65, 0x74, 0x63, 0x68, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e,
	0x67, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67,
	0x22, 0xad, 0x01, 0x0a, 0x14, 0x46, 0x65, 0x74, 0x63, 0x68, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65,
	0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x66, 0x6c, 0x69,
	0x67, 0x68, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x66, 0x6c, 0x69, 0x67, 0x68,
	0x74, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x68,
	0x61, 0x73, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x0b, 0x68, 0x61, 0x73, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x12, 0x16,
	0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06,
	0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x28, 0x0a, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b,
	0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e, 0x67, 0x65, 0x52, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65,
	0x22, 0x2a, 0x0a, 0x0e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x6f, 0x6f, 0x6b, 0x69, 0x6e, 0x67, 0x22, 0x71, 0x0a, 0x0f,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x2e, 0x0a, 0x07, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x14, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43,
	0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x52, 0x07, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x12,
	0x2e, 0x0a, 0x13, 0x70, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x73, 0x5f, 0x69, 0x6e,
	0x5f, 0x71, 0x75, 0x65, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x11, 0x70, 0x61,
	0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x73, 0x49, 0x6e, 0x51, 0x75, 0x65, 0x75, 0x65, 0x22,
	0x32, 0x0a, 0x16, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x6f, 0x6f,
	0x6b, 0x69, 0x6e, 0x67, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x6f, 0x6f, 0x6b,
	0x69, 0x6e, 0x67, 0x22, 0x83, 0x02, 0x0a, 0x17, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65,
	0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x34, 0x0a, 0x09, 0x70, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x16, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31,
	0x2e, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x52, 0x09, 0x70, 0x61, 0x73, 0x73,
	0x65, 0x6e, 0x67, 0x65, 0x72, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x65, 0x64,
	0x5f, 0x69, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x63, 0x68, 0x65, 0x63, 0x6b,
	0x65, 0x64, 0x49, 0x6e, 0x12, 0x2e, 0x0a, 0x07, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x14, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b,
	0x2e, 0x76, 0x31, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x52, 0x07, 0x63, 0x68, 0x65,
	0x63, 0x6b, 0x69, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x68, 0x61, 0x73, 0x5f, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x65, 0x72, 0x73, 0x18, 0x04, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x68, 0x61, 0x73, 0x43,
	0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f,
	0x72, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x12,
	0x28, 0x0a, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12,
	0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x61, 0x6e,
	0x67, 0x65, 0x52, 0x05, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x22, 0x2c, 0x0a, 0x10, 0x53, 0x75, 0x62,
	0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a,
	0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07,
	0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x22, 0x2e, 0x0a, 0x12, 0x55, 0x6e, 0x73, 0x75, 0x62,
	0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a,
	0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07,
	0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x22, 0x15, 0x0a, 0x13, 0x55, 0x6e, 0x73, 0x75, 0x62,
	0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x5b,
	0x0a, 0x0f, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x61, 0x69, 0x72, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x66,
	0x6c, 0x69, 0x67, 0x68, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x66, 0x6c, 0x69,
	0x67, 0x68, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x22, 0x44, 0x0a, 0x10, 0x43,
	0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x30, 0x0a, 0x08, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28,
	0x0b, 0x32, 0x14, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x52, 0x08, 0x63, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e,
	0x73, 0x22, 0x11, 0x0a, 0x0f, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x22, 0x41, 0x0a, 0x10, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a, 0x07, 0x73, 0x65, 0x63, 0x74,
	0x6f, 0x72, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x61, 0x65, 0x72, 0x6f,
	0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x07,
	0x73, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x2a, 0xed, 0x01, 0x0a, 0x09, 0x45, 0x76, 0x65, 0x6e,
	0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54,
	0x59, 0x50, 0x45, 0x5f, 0x55, 0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10,
	0x00, 0x12, 0x20, 0x0a, 0x1c, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f,
	0x43, 0x4f, 0x55, 0x4e, 0x54, 0x45, 0x52, 0x53, 0x5f, 0x41, 0x53, 0x53, 0x49, 0x47, 0x4e, 0x45,
	0x44, 0x10, 0x01, 0x12, 0x1d, 0x0a, 0x19, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50,
	0x45, 0x5f, 0x43, 0x4f, 0x55, 0x4e, 0x54, 0x45, 0x52, 0x53, 0x5f, 0x46, 0x52, 0x45, 0x45, 0x44,
	0x10, 0x02, 0x12, 0x20, 0x0a, 0x1c, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45,
	0x5f, 0x41, 0x53, 0x53, 0x49, 0x47, 0x4e, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x51, 0x55, 0x45, 0x55,
	0x45, 0x44, 0x10, 0x03, 0x12, 0x1a, 0x0a, 0x16, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59,
	0x50, 0x45, 0x5f, 0x51, 0x55, 0x45, 0x55, 0x45, 0x5f, 0x4d, 0x4f, 0x56, 0x45, 0x44, 0x10, 0x04,
	0x12, 0x20, 0x0a, 0x1c, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45, 0x5f, 0x50,
	0x41, 0x53, 0x53, 0x45, 0x4e, 0x47, 0x45, 0x52, 0x5f, 0x41, 0x52, 0x52, 0x49, 0x56, 0x45, 0x44,
	0x10, 0x05, 0x12, 0x23, 0x0a, 0x1f, 0x45, 0x56, 0x45, 0x4e, 0x54, 0x5f, 0x54, 0x59, 0x50, 0x45,
	0x5f, 0x50, 0x41, 0x53, 0x53, 0x45, 0x4e, 0x47, 0x45, 0x52, 0x5f, 0x43, 0x48, 0x45, 0x43, 0x4b,
	0x45, 0x44, 0x5f, 0x49, 0x4e, 0x10, 0x06, 0x32, 0x81, 0x02, 0x0a, 0x0c, 0x41, 0x64, 0x6d, 0x69,
	0x6e, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4a, 0x0a, 0x09, 0x41, 0x64, 0x64, 0x53,
	0x65, 0x63, 0x74, 0x6f, 0x72, 0x12, 0x1d, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b,
	0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e,
	0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x50, 0x0a, 0x0b, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74,
	0x65, 0x72, 0x73, 0x12, 0x1f, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e,
	0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x53, 0x0a, 0x0c, 0x41, 0x64, 0x64, 0x50, 0x61, 0x73,
	0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x12, 0x20, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73,
	0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64,
	0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x64, 0x64, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e,
	0x67, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x32, 0x85, 0x03, 0x0a, 0x0e,
	0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x50,
	0x0a, 0x0b, 0x4c, 0x69, 0x73, 0x74, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x12, 0x1f, 0x2e,
	0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74,
	0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20,
	0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73,
	0x74, 0x53, 0x65, 0x63, 0x74, 0x6f, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x59, 0x0a, 0x0e, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65,
	0x72, 0x73, 0x12, 0x22, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31,
	0x2e, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73,
	0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x43, 0x6f, 0x75, 0x6e, 0x74,
	0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x53, 0x0a, 0x0c, 0x46,
	0x72, 0x65, 0x65, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x12, 0x20, 0x2e, 0x61, 0x65,
	0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x72, 0x65, 0x65, 0x43, 0x6f,
	0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e,
	0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x72, 0x65, 0x65,
	0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x71, 0x0a, 0x16, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67, 0x41,
	0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x2a, 0x2e, 0x61, 0x65, 0x72,
	0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x6e,
	0x64, 0x69, 0x6e, 0x67, 0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2b, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73,
	0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x65, 0x6e, 0x64, 0x69, 0x6e, 0x67,
	0x41, 0x73, 0x73, 0x69, 0x67, 0x6e, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x32, 0x8b, 0x02, 0x0a, 0x10, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65,
	0x72, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x53, 0x0a, 0x0c, 0x46, 0x65, 0x74, 0x63,
	0x68, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x12, 0x20, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64,
	0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x65, 0x74, 0x63, 0x68, 0x43, 0x6f, 0x75, 0x6e,
	0x74, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x21, 0x2e, 0x61, 0x65, 0x72,
	0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x65, 0x74, 0x63, 0x68, 0x43, 0x6f,
	0x75, 0x6e, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x44, 0x0a,
	0x07, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6e, 0x12, 0x1b, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64,
	0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b,
	0x2e, 0x76, 0x31, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x5c, 0x0a, 0x0f, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x23, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73,
	0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e, 0x67, 0x65, 0x72, 0x53, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x61, 0x65,
	0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x61, 0x73, 0x73, 0x65, 0x6e,
	0x67, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x32, 0xa3, 0x01, 0x0a, 0x0d, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x40, 0x0a, 0x09, 0x53, 0x75, 0x62, 0x73, 0x63, 0x72, 0x69, 0x62, 0x65,
	0x12, 0x1d, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x75, 0x62, 0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x12, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x30, 0x01, 0x12, 0x50, 0x0a, 0x0b, 0x55, 0x6e, 0x73, 0x75, 0x62, 0x73, 0x63,
	0x72, 0x69, 0x62, 0x65, 0x12, 0x1f, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e,
	0x76, 0x31, 0x2e, 0x55, 0x6e, 0x73, 0x75, 0x62, 0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b,
	0x2e, 0x76, 0x31, 0x2e, 0x55, 0x6e, 0x73, 0x75, 0x62, 0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x32, 0xa0, 0x01, 0x0a, 0x0c, 0x51, 0x75, 0x65, 0x72,
	0x79, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x47, 0x0a, 0x08, 0x43, 0x68, 0x65, 0x63,
	0x6b, 0x69, 0x6e, 0x73, 0x12, 0x1c, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e,
	0x76, 0x31, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31,
	0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x69, 0x6e, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x47, 0x0a, 0x08, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x73, 0x12, 0x1c, 0x2e,
	0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x75, 0x6e,
	0x74, 0x65, 0x72, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x61, 0x65,
	0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x65,
	0x72, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x37, 0x5a, 0x35, 0x67, 0x69,
	0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x67, 0x72, 0x6f, 0x75, 0x6e, 0x64, 0x6f,
	0x70, 0x73, 0x2f, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73, 0x6b, 0x2f, 0x61, 0x70, 0x69, 0x2f,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x76, 0x31, 0x3b, 0x61, 0x65, 0x72, 0x6f, 0x64, 0x65, 0x73,
	0x6b, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_v1_aerodesk_proto_rawDescOnce sync.Once
	file_api_proto_v1_aerodesk_proto_rawDescData = file_api_proto_v1_aerodesk_proto_rawDesc
)

func file_api_proto_v1_aerodesk_proto_rawDescGZIP() []byte {
	file_api_proto_v1_aerodesk_proto_rawDescOnce.Do(func() {
		file_api_proto_v1_aerodesk_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_v1_aerodesk_proto_rawDescData)
	})
	return file_api_proto_v1_aerodesk_proto_rawDescData
}

var file_api_proto_v1_aerodesk_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_api_proto_v1_aerodesk_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_api_proto_v1_aerodesk_proto_goTypes = []any{
	(EventType)(0),                         // 0: aerodesk.v1.EventType
	(*Range)(nil),                          // 1: aerodesk.v1.Range
	(*AssignedInfo)(nil),                   // 2: aerodesk.v1.AssignedInfo
	(*CounterRange)(nil),                   // 3: aerodesk.v1.CounterRange
	(*Sector)(nil),                         // 4: aerodesk.v1.Sector
	(*PendingAssignment)(nil),              // 5: aerodesk.v1.PendingAssignment
	(*Passenger)(nil),                      // 6: aerodesk.v1.Passenger
	(*Checkin)(nil),                        // 7: aerodesk.v1.Checkin
	(*Event)(nil),                          // 8: aerodesk.v1.Event
	(*AddSectorRequest)(nil),               // 9: aerodesk.v1.AddSectorRequest
	(*AddSectorResponse)(nil),              // 10: aerodesk.v1.AddSectorResponse
	(*AddCountersRequest)(nil),             // 11: aerodesk.v1.AddCountersRequest
	(*AddCountersResponse)(nil),            // 12: aerodesk.v1.AddCountersResponse
	(*AddPassengerRequest)(nil),            // 13: aerodesk.v1.AddPassengerRequest
	(*AddPassengerResponse)(nil),           // 14: aerodesk.v1.AddPassengerResponse
	(*ListSectorsRequest)(nil),             // 15: aerodesk.v1.ListSectorsRequest
	(*SectorSummary)(nil),                  // 16: aerodesk.v1.SectorSummary
	(*ListSectorsResponse)(nil),            // 17: aerodesk.v1.ListSectorsResponse
	(*AssignCountersRequest)(nil),          // 18: aerodesk.v1.AssignCountersRequest
	(*AssignCountersResponse)(nil),         // 19: aerodesk.v1.AssignCountersResponse
	(*FreeCountersRequest)(nil),            // 20: aerodesk.v1.FreeCountersRequest
	(*FreeCountersResponse)(nil),           // 21: aerodesk.v1.FreeCountersResponse
	(*ListPendingAssignmentsRequest)(nil),  // 22: aerodesk.v1.ListPendingAssignmentsRequest
	(*ListPendingAssignmentsResponse)(nil), // 23: aerodesk.v1.ListPendingAssignmentsResponse
	(*FetchCounterRequest)(nil),            // 24: aerodesk.v1.FetchCounterRequest
	(*FetchCounterResponse)(nil),           // 25: aerodesk.v1.FetchCounterResponse
	(*CheckInRequest)(nil),                 // 26: aerodesk.v1.CheckInRequest
	(*CheckInResponse)(nil),                // 27: aerodesk.v1.CheckInResponse
	(*PassengerStatusRequest)(nil),         // 28: aerodesk.v1.PassengerStatusRequest
	(*PassengerStatusResponse)(nil),        // 29: aerodesk.v1.PassengerStatusResponse
	(*SubscribeRequest)(nil),               // 30: aerodesk.v1.SubscribeRequest
	(*UnsubscribeRequest)(nil),             // 31: aerodesk.v1.UnsubscribeRequest
	(*UnsubscribeResponse)(nil),            // 32: aerodesk.v1.UnsubscribeResponse
	(*CheckinsRequest)(nil),                // 33: aerodesk.v1.CheckinsRequest
	(*CheckinsResponse)(nil),               // 34: aerodesk.v1.CheckinsResponse
	(*CountersRequest)(nil),                // 35: aerodesk.v1.CountersRequest
	(*CountersResponse)(nil),               // 36: aerodesk.v1.CountersResponse
}
var file_api_proto_v1_aerodesk_proto_depIdxs = []int32{
	1,  // 0: aerodesk.v1.CounterRange.range:type_name -> aerodesk.v1.Range
	2,  // 1: aerodesk.v1.CounterRange.assigned:type_name -> aerodesk.v1.AssignedInfo
	3,  // 2: aerodesk.v1.Sector.counters:type_name -> aerodesk.v1.CounterRange
	0,  // 3: aerodesk.v1.Event.type:type_name -> aerodesk.v1.EventType
	1,  // 4: aerodesk.v1.Event.range:type_name -> aerodesk.v1.Range
	1,  // 5: aerodesk.v1.AddCountersResponse.range:type_name -> aerodesk.v1.Range
	6,  // 6: aerodesk.v1.AddPassengerRequest.passenger:type_name -> aerodesk.v1.Passenger
	1,  // 7: aerodesk.v1.SectorSummary.merged_ranges:type_name -> aerodesk.v1.Range
	16, // 8: aerodesk.v1.ListSectorsResponse.sectors:type_name -> aerodesk.v1.SectorSummary
	1,  // 9: aerodesk.v1.AssignCountersResponse.range:type_name -> aerodesk.v1.Range
	3,  // 10: aerodesk.v1.FreeCountersResponse.freed:type_name -> aerodesk.v1.CounterRange
	5,  // 11: aerodesk.v1.ListPendingAssignmentsResponse.assignments:type_name -> aerodesk.v1.PendingAssignment
	1,  // 12: aerodesk.v1.FetchCounterResponse.range:type_name -> aerodesk.v1.Range
	7,  // 13: aerodesk.v1.CheckInResponse.checkin:type_name -> aerodesk.v1.Checkin
	6,  // 14: aerodesk.v1.PassengerStatusResponse.passenger:type_name -> aerodesk.v1.Passenger
	7,  // 15: aerodesk.v1.PassengerStatusResponse.checkin:type_name -> aerodesk.v1.Checkin
	1,  // 16: aerodesk.v1.PassengerStatusResponse.range:type_name -> aerodesk.v1.Range
	7,  // 17: aerodesk.v1.CheckinsResponse.checkins:type_name -> aerodesk.v1.Checkin
	4,  // 18: aerodesk.v1.CountersResponse.sectors:type_name -> aerodesk.v1.Sector
	9,  // 19: aerodesk.v1.AdminService.AddSector:input_type -> aerodesk.v1.AddSectorRequest
	11, // 20: aerodesk.v1.AdminService.AddCounters:input_type -> aerodesk.v1.AddCountersRequest
	13, // 21: aerodesk.v1.AdminService.AddPassenger:input_type -> aerodesk.v1.AddPassengerRequest
	15, // 22: aerodesk.v1.CounterService.ListSectors:input_type -> aerodesk.v1.ListSectorsRequest
	18, // 23: aerodesk.v1.CounterService.AssignCounters:input_type -> aerodesk.v1.AssignCountersRequest
	20, // 24: aerodesk.v1.CounterService.FreeCounters:input_type -> aerodesk.v1.FreeCountersRequest
	22, // 25: aerodesk.v1.CounterService.ListPendingAssignments:input_type -> aerodesk.v1.ListPendingAssignmentsRequest
	24, // 26: aerodesk.v1.PassengerService.FetchCounter:input_type -> aerodesk.v1.FetchCounterRequest
	26, // 27: aerodesk.v1.PassengerService.CheckIn:input_type -> aerodesk.v1.CheckInRequest
	28, // 28: aerodesk.v1.PassengerService.PassengerStatus:input_type -> aerodesk.v1.PassengerStatusRequest
	30, // 29: aerodesk.v1.EventsService.Subscribe:input_type -> aerodesk.v1.SubscribeRequest
	31, // 30: aerodesk.v1.EventsService.Unsubscribe:input_type -> aerodesk.v1.UnsubscribeRequest
	33, // 31: aerodesk.v1.QueryService.Checkins:input_type -> aerodesk.v1.CheckinsRequest
	35, // 32: aerodesk.v1.QueryService.Counters:input_type -> aerodesk.v1.CountersRequest
	10, // 33: aerodesk.v1.AdminService.AddSector:output_type -> aerodesk.v1.AddSectorResponse
	12, // 34: aerodesk.v1.AdminService.AddCounters:output_type -> aerodesk.v1.AddCountersResponse
	14, // 35: aerodesk.v1.AdminService.AddPassenger:output_type -> aerodesk.v1.AddPassengerResponse
	17, // 36: aerodesk.v1.CounterService.ListSectors:output_type -> aerodesk.v1.ListSectorsResponse
	19, // 37: aerodesk.v1.CounterService.AssignCounters:output_type -> aerodesk.v1.AssignCountersResponse
	21, // 38: aerodesk.v1.CounterService.FreeCounters:output_type -> aerodesk.v1.FreeCountersResponse
	23, // 39: aerodesk.v1.CounterService.ListPendingAssignments:output_type -> aerodesk.v1.ListPendingAssignmentsResponse
	25, // 40: aerodesk.v1.PassengerService.FetchCounter:output_type -> aerodesk.v1.FetchCounterResponse
	27, // 41: aerodesk.v1.PassengerService.CheckIn:output_type -> aerodesk.v1.CheckInResponse
	29, // 42: aerodesk.v1.PassengerService.PassengerStatus:output_type -> aerodesk.v1.PassengerStatusResponse
	8,  // 43: aerodesk.v1.EventsService.Subscribe:output_type -> aerodesk.v1.Event
	32, // 44: aerodesk.v1.EventsService.Unsubscribe:output_type -> aerodesk.v1.UnsubscribeResponse
	34, // 45: aerodesk.v1.QueryService.Checkins:output_type -> aerodesk.v1.CheckinsResponse
	36, // 46: aerodesk.v1.QueryService.Counters:output_type -> aerodesk.v1.CountersResponse
	33, // [33:47] is the sub-list for method output_type
	19, // [19:33] is the sub-list for method input_type
	19, // [19:19] is the sub-list for extension type_name
	19, // [19:19] is the sub-list for extension extendee
	0,  // [0:19] is the sub-list for field type_name
}

func init() { file_api_proto_v1_aerodesk_proto_init() }
func file_api_proto_v1_aerodesk_proto_init() {
	if File_api_proto_v1_aerodesk_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_api_proto_v1_aerodesk_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Range); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*AssignedInfo); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*CounterRange); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*Sector); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*PendingAssignment); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*Passenger); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*Checkin); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*Event); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*AddSectorRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*AddSectorResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*AddCountersRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*AddCountersResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*AddPassengerRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*AddPassengerResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*ListSectorsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*SectorSummary); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*ListSectorsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*AssignCountersRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[18].Exporter = func(v any, i int) any {
			switch v := v.(*AssignCountersResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[19].Exporter = func(v any, i int) any {
			switch v := v.(*FreeCountersRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[20].Exporter = func(v any, i int) any {
			switch v := v.(*FreeCountersResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[21].Exporter = func(v any, i int) any {
			switch v := v.(*ListPendingAssignmentsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[22].Exporter = func(v any, i int) any {
			switch v := v.(*ListPendingAssignmentsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[23].Exporter = func(v any, i int) any {
			switch v := v.(*FetchCounterRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[24].Exporter = func(v any, i int) any {
			switch v := v.(*FetchCounterResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[25].Exporter = func(v any, i int) any {
			switch v := v.(*CheckInRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[26].Exporter = func(v any, i int) any {
			switch v := v.(*CheckInResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[27].Exporter = func(v any, i int) any {
			switch v := v.(*PassengerStatusRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[28].Exporter = func(v any, i int) any {
			switch v := v.(*PassengerStatusResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[29].Exporter = func(v any, i int) any {
			switch v := v.(*SubscribeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[30].Exporter = func(v any, i int) any {
			switch v := v.(*UnsubscribeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[31].Exporter = func(v any, i int) any {
			switch v := v.(*UnsubscribeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[32].Exporter = func(v any, i int) any {
			switch v := v.(*CheckinsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[33].Exporter = func(v any, i int) any {
			switch v := v.(*CheckinsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[34].Exporter = func(v any, i int) any {
			switch v := v.(*CountersRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_api_proto_v1_aerodesk_proto_msgTypes[35].Exporter = func(v any, i int) any {
			switch v := v.(*CountersResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_v1_aerodesk_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_api_proto_v1_aerodesk_proto_goTypes,
		DependencyIndexes: file_api_proto_v1_aerodesk_proto_depIdxs,
		EnumInfos:         file_api_proto_v1_aerodesk_proto_enumTypes,
		MessageInfos:      file_api_proto_v1_aerodesk_proto_msgTypes,
	}.Build()
	File_api_proto_v1_aerodesk_proto = out.File
	file_api_proto_v1_aerodesk_proto_rawDesc = nil
	file_api_proto_v1_aerodesk_proto_goTypes = nil
	file_api_proto_v1_aerodesk_proto_depIdxs = nil
}
