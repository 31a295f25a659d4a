package replay

// sampleDoc is a small decoded replay: header scalars, one duplicated key,
// two player records and a two-frame network stream.
const sampleDoc = `{
  "header_size": 4768,
  "header_crc": 337,
  "major_version": 868,
  "minor_version": 32,
  "net_version": 10,
  "game_type": "TAGame.Replay_Soccar_TA",
  "properties": [
    ["TeamSize", {"Int": 2}],
    ["Team0Score", {"Int": 2}],
    ["Team1Score", {"Int": 1}],
    ["TotalSecondsPlayed", {"Float": 310.5}],
    ["MapName", {"Name": "Stadium_P"}],
    ["MatchType", {"Name": "Private"}],
    ["ReplayName", {"Str": "scrim"}],
    ["ReplayName", {"Str": "shadowed"}],
    ["Mystery", {"Vector": [1, 2, 3]}],
    ["PlayerStats", {"Array": [
      [
        ["Name", {"Str": "Ana"}],
        ["PlayerID", {"Struct": {"name": "UniqueNetId", "fields": [
          ["Uid", {"QWord": "76561198000000001"}],
          ["Platform", {"Byte": {"kind": "OnlinePlatform", "value": "OnlinePlatform_Steam"}}]
        ]}}],
        ["Team", {"Int": 0}],
        ["Score", {"Int": 540}],
        ["bBot", {"Bool": false}]
      ],
      [
        ["Name", {"Str": "Bo"}],
        ["Team", {"Int": 1}],
        ["Score", {"Int": 320}]
      ]
    ]}]
  ],
  "network_frames": {"frames": [
    {"time": 0.0, "delta": 0.0, "updated_actors": []},
    {"time": 0.5, "delta": 0.033, "updated_actors": [
      {"actor_id": 7, "stream_id": 12, "object_id": 40, "attribute": {"TeamLoadout": {
        "blue": {"version": 23, "body": 23, "decal": 306, "wheels": 376},
        "orange": {"version": 23, "body": 403}
      }}},
      {"actor_id": 7, "stream_id": 13, "object_id": 41, "attribute": {"String": "Ana"}},
      {"actor_id": 9, "stream_id": 14, "object_id": 42, "attribute": {"Boolean": true}}
    ]}
  ]}
}`

// plainDoc is the same kind of header written as plain JSON values, the way
// the decoder serializes it without variant tags.
const plainDoc = `{
  "major_version": 868,
  "minor_version": 32,
  "properties": {
    "TeamSize": 1,
    "Team0Score": 2,
    "TotalSecondsPlayed": 310.0,
    "ReplayName": "plain",
    "bOvertime": true,
    "PlayerStats": [
      {
        "Name": "Ana",
        "Team": 0,
        "Score": 500,
        "PlayerID": {"name": "UniqueNetId", "fields": {
          "Uid": "76561198000000001",
          "Platform": {"kind": "OnlinePlatform", "value": "OnlinePlatform_Steam"}
        }}
      }
    ]
  }
}`
